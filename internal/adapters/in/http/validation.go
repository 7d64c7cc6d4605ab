package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

type echoContextKey struct{}

// RequestValidator checks requests against the operations of doc before they
// reach a handler. Paths the document does not describe pass through.
func RequestValidator(doc *openapi3.T, authenticate openapi3filter.AuthenticationFunc) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: authenticate,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(c)
			}

			ctx := context.WithValue(req.Context(), echoContextKey{}, c)
			err = openapi3filter.ValidateRequest(ctx, &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			})
			if err != nil {
				return validationError(err)
			}

			return next(c)
		}
	}, nil
}

func validationError(err error) error {
	var securityErr *openapi3filter.SecurityRequirementsError
	if errors.As(err, &securityErr) {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required").SetInternal(err)
	}

	var requestErr *openapi3filter.RequestError
	if errors.As(err, &requestErr) {
		return echo.NewHTTPError(http.StatusBadRequest, requestErr.Error()).SetInternal(err)
	}

	return echo.NewHTTPError(http.StatusBadRequest, err.Error()).SetInternal(err)
}
