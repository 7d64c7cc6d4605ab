package commands_test

import (
	"testing"

	"ordertrack/internal/core/domain/model/company"
	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/domain/model/progress"

	"github.com/stretchr/testify/require"
)

func newCompany(t *testing.T, ownerID kernel.UUID, stepsText string) *company.Company {
	t.Helper()
	email, err := kernel.NewEmail("email", "sales@acme.test")
	require.NoError(t, err)
	steps, err := company.ParseProcessSteps(stepsText)
	require.NoError(t, err)
	c, err := company.NewCompany(kernel.NewUUID(), ownerID, "Acme", email, "", steps)
	require.NoError(t, err)
	return c
}

func newCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Jane Doe", "jane@example.com", "")
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, companyID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), companyID, "PO-1", newCustomer(t), "Oak table", nil)
	require.NoError(t, err)
	return o
}

func newStep(t *testing.T, status progress.Status) *progress.Step {
	t.Helper()
	s, err := progress.RestoreStep(kernel.NewUUID(), kernel.NewUUID(), "Cutting", 1, status, "", nil, nil)
	require.NoError(t, err)
	return s
}
