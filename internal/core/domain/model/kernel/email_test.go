package kernel_test

import (
	"strings"
	"testing"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "plain address", input: "sales@acme.test", want: "sales@acme.test"},
		{name: "surrounding whitespace is trimmed", input: "  sales@acme.test \n", want: "sales@acme.test"},
		{name: "empty", input: "", wantErr: errs.ErrValueIsRequired},
		{name: "blank", input: "   ", wantErr: errs.ErrValueIsRequired},
		{name: "missing at sign", input: "sales.acme.test", wantErr: errs.ErrValueIsInvalid},
		{name: "display name", input: "Sales <sales@acme.test>", wantErr: errs.ErrValueIsInvalid},
		{name: "longest address", input: strings.Repeat("a", 64) + "@" + strings.Repeat("b", 250) + ".test", want: strings.Repeat("a", 64) + "@" + strings.Repeat("b", 250) + ".test"},
		{name: "longer than column", input: strings.Repeat("a", 64) + "@" + strings.Repeat("b", 273) + ".test", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			email, err := kernel.NewEmail("email", tc.input)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			require.NoError(t, email.Validate())
			assert.Equal(t, tc.want, email.String())
		})
	}
}

func TestEmail_ParamNameIsReported(t *testing.T) {
	_, err := kernel.NewEmail("customer_email", "nope")

	var invalid *errs.ValueIsInvalidError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "customer_email", invalid.ParamName)
}

func TestEmail_ZeroValueIsInvalid(t *testing.T) {
	var email kernel.Email

	require.ErrorIs(t, email.Validate(), kernel.ErrEmailIsNotConstructed)
}

func TestEmail_IsEqualIgnoresCase(t *testing.T) {
	a, err := kernel.NewEmail("email", "Sales@Acme.test")
	require.NoError(t, err)
	b, err := kernel.NewEmail("email", "sales@acme.test")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
}
