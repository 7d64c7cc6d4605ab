package kernel

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"ordertrack/internal/pkg/errs"
)

// MaxEmailLength bounds an address (characters).
const MaxEmailLength = 320

var ErrEmailIsNotConstructed = errors.New("Email must be created via NewEmail constructor")

// Email is a validated, bare e-mail address ("name@host"). Display names
// ("Jane <jane@example.com>") are rejected.
type Email struct {
	address string
}

// NewEmail trims the input and validates it. paramName is used in the
// returned validation error so callers can tell company and customer
// addresses apart.
func NewEmail(paramName, address string) (Email, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Email{}, errs.NewValueIsRequiredError(paramName)
	}
	if utf8.RuneCountInString(address) > MaxEmailLength {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("longer than %d characters", MaxEmailLength),
		)
	}

	parsed, err := mail.ParseAddress(address)
	if err != nil {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	if parsed.Address != address {
		return Email{}, errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%q is not a bare address", address),
		)
	}

	return Email{address: address}, nil
}

func (e Email) String() string {
	return e.address
}

func (e Email) IsEqual(other Email) bool {
	return strings.EqualFold(e.address, other.address)
}

func (e Email) Validate() error {
	if e.address == "" {
		return ErrEmailIsNotConstructed
	}
	return nil
}
