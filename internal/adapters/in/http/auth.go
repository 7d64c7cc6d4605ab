package http

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ordertrack/internal/core/domain/model/kernel"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	bearerScheme = "bearerAuth"
	ownerKey     = "owner"
)

var ErrUnauthenticated = errors.New("authentication required")

// Authenticator verifies bearer tokens issued by the identity provider. The
// token subject is the owner id; credentials are never handled here.
type Authenticator struct {
	secret []byte
	parser *jwt.Parser
}

func NewAuthenticator(secret []byte) *Authenticator {
	return &Authenticator{
		secret: secret,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})),
	}
}

// Verify checks signature and expiry of token and returns its subject.
func (a *Authenticator) Verify(token string) (kernel.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := a.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	if claims.ExpiresAt == nil {
		return kernel.UUID{}, fmt.Errorf("%w: token has no expiry", ErrUnauthenticated)
	}

	ownerID, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("%w: subject is not an owner id", ErrUnauthenticated)
	}
	return ownerID, nil
}

// Authenticate is the openapi3filter.AuthenticationFunc of the request
// validator. It stores the owner id on the echo context of the request.
func (a *Authenticator) Authenticate(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	if input.SecuritySchemeName != bearerScheme {
		return fmt.Errorf("%w: unsupported security scheme %q", ErrUnauthenticated, input.SecuritySchemeName)
	}

	header := input.RequestValidationInput.Request.Header.Get(echo.HeaderAuthorization)
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return fmt.Errorf("%w: missing bearer token", ErrUnauthenticated)
	}

	ownerID, err := a.Verify(strings.TrimSpace(token))
	if err != nil {
		return err
	}

	c, ok := ctx.Value(echoContextKey{}).(echo.Context)
	if !ok {
		return errors.New("echo context is not available")
	}
	c.Set(ownerKey, ownerID)
	return nil
}

// OwnerID returns the authenticated owner of the request.
func OwnerID(c echo.Context) (kernel.UUID, error) {
	ownerID, ok := c.Get(ownerKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, ErrUnauthenticated
	}
	return ownerID, nil
}
