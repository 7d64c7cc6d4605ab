package company_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, address string) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail("email", address)
	require.NoError(t, err)
	return email
}

func mustSteps(t *testing.T, names ...string) company.ProcessSteps {
	t.Helper()
	steps, err := company.NewProcessSteps(names)
	require.NoError(t, err)
	return steps
}

func TestNewCompany_Valid(t *testing.T) {
	id := kernel.NewUUID()
	owner := kernel.NewUUID()

	c, err := company.NewCompany(id, owner, "  Acme  ", mustEmail(t, "sales@acme.test"), " Furniture ", mustSteps(t, "Design", "Build"))

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, id, c.ID())
	assert.Equal(t, owner, c.OwnerID())
	assert.Equal(t, "Acme", c.Name())
	assert.Equal(t, "sales@acme.test", c.Email().String())
	assert.Equal(t, "Furniture", c.Description())
	assert.Equal(t, []string{"Design", "Build"}, c.ProcessSteps().Names())
	assert.True(t, c.IsOwnedBy(owner))
	assert.False(t, c.IsOwnedBy(kernel.NewUUID()))
}

func TestNewCompany_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		id      kernel.UUID
		owner   kernel.UUID
		title   string
		email   kernel.Email
		steps   company.ProcessSteps
		wantErr error
	}{
		{
			name:    "missing id",
			owner:   kernel.NewUUID(),
			title:   "Acme",
			email:   mustEmail(t, "a@acme.test"),
			steps:   mustSteps(t, "A"),
			wantErr: kernel.ErrUUIDIsNotConstructed,
		},
		{
			name:    "missing owner",
			id:      kernel.NewUUID(),
			title:   "Acme",
			email:   mustEmail(t, "a@acme.test"),
			steps:   mustSteps(t, "A"),
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "blank name",
			id:      kernel.NewUUID(),
			owner:   kernel.NewUUID(),
			title:   "   ",
			email:   mustEmail(t, "a@acme.test"),
			steps:   mustSteps(t, "A"),
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "missing email",
			id:      kernel.NewUUID(),
			owner:   kernel.NewUUID(),
			title:   "Acme",
			steps:   mustSteps(t, "A"),
			wantErr: errs.ErrValueIsRequired,
		},
		{
			name:    "missing steps",
			id:      kernel.NewUUID(),
			owner:   kernel.NewUUID(),
			title:   "Acme",
			email:   mustEmail(t, "a@acme.test"),
			wantErr: errs.ErrValueIsRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := company.NewCompany(tc.id, tc.owner, tc.title, tc.email, "", tc.steps)

			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCompany_Update(t *testing.T) {
	c, err := company.NewCompany(kernel.NewUUID(), kernel.NewUUID(), "Acme", mustEmail(t, "a@acme.test"), "", mustSteps(t, "A"))
	require.NoError(t, err)

	t.Run("replaces profile", func(t *testing.T) {
		err := c.Update("Acme Ltd", mustEmail(t, "b@acme.test"), "desc", mustSteps(t, "A", "B", "C"))

		require.NoError(t, err)
		assert.Equal(t, "Acme Ltd", c.Name())
		assert.Equal(t, "b@acme.test", c.Email().String())
		assert.Equal(t, "desc", c.Description())
		assert.Equal(t, 3, c.ProcessSteps().Len())
	})

	t.Run("invalid update leaves company untouched", func(t *testing.T) {
		err := c.Update("", mustEmail(t, "c@acme.test"), "other", company.ProcessSteps{})

		require.Error(t, err)
		assert.Equal(t, "Acme Ltd", c.Name())
		assert.Equal(t, "b@acme.test", c.Email().String())
		assert.Equal(t, 3, c.ProcessSteps().Len())
	})
}

func TestCompany_ZeroValueIsInvalid(t *testing.T) {
	var c company.Company
	require.ErrorIs(t, c.Validate(), company.ErrCompanyIsNotConstructed)

	var nilCompany *company.Company
	require.ErrorIs(t, nilCompany.Validate(), company.ErrCompanyIsNotConstructed)
}
