package pages

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mktrading/backoffice/client"
	"github.com/mktrading/backoffice/listpage"
	"github.com/mktrading/backoffice/server"
	"github.com/mktrading/backoffice/session"
)

// newEnv brings up the real backend on a throwaway database and returns a
// logged-in client, so every page test runs the whole stack.
func newEnv(t *testing.T) *client.Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := server.OpenDB(filepath.Join(t.TempDir(), "test.db3"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, server.SeedUser(db, "admin", "secret123"))
	ts := httptest.NewServer(server.Setup(db, "testkey"))
	t.Cleanup(ts.Close)

	api := client.New(ts.URL, &session.MemStore{}, nil)
	require.NoError(t, api.Login(context.Background(), "admin", "secret123"))
	return api
}

func TestAddPartyWithBlankOptionalFields(t *testing.T) {
	api := newEnv(t)
	ctx := context.Background()

	parties := Parties(api)
	parties.Load(ctx)
	require.Empty(t, parties.List())

	parties.OpenCreate()
	parties.Draft().Name = "Acme Corp"
	require.NoError(t, parties.Save(ctx))

	require.Len(t, parties.List(), 1)
	p := parties.List()[0]
	assert.Equal(t, "Acme Corp", p.Name)
	assert.Equal(t, "", p.Contact)
	assert.Equal(t, "", p.Address)
	assert.Equal(t, "", p.Gstin)
	assert.NotZero(t, p.Id)
}

func TestChallanDefaultsAndCoercion(t *testing.T) {
	api := newEnv(t)
	ctx := context.Background()

	parties := Parties(api)
	parties.Load(ctx)
	parties.OpenCreate()
	parties.Draft().Name = "Mehta Traders"
	require.NoError(t, parties.Save(ctx))
	partyID := parties.List()[0].Id

	challans := Challans(api)
	challans.Load(ctx)
	require.True(t, challans.CanCreate())

	challans.OpenCreate()
	assert.Equal(t, partyID, challans.Draft().PartyID) // first party preselected
	assert.Equal(t, time.Now().Format("2006-01-02"), challans.Draft().Date)

	challans.Draft().ChallanNumber = "CH-001"
	challans.Draft().Amount = "abc" // garbage coerces to 0 here
	require.NoError(t, challans.Save(ctx))
	require.Len(t, challans.List(), 1)
	assert.Equal(t, 0.0, challans.List()[0].Amount)
	assert.Equal(t, "Mehta Traders", challans.List()[0].Party_name)
}

func TestChallanCreateDisabledWithoutParties(t *testing.T) {
	api := newEnv(t)
	ctx := context.Background()

	challans := Challans(api)
	challans.Load(ctx)
	assert.False(t, challans.CanCreate())
	assert.Equal(t, "Add at least one party before adding challans.", challans.Hint())
	challans.OpenCreate()
	assert.Equal(t, listpage.Ready, challans.State())
}

func TestPaymentAmountZeroFallback(t *testing.T) {
	api := newEnv(t)
	ctx := context.Background()

	parties := Parties(api)
	parties.Load(ctx)
	parties.OpenCreate()
	parties.Draft().Name = "Gupta Metals"
	require.NoError(t, parties.Save(ctx))

	payments := Payments(api)
	payments.Load(ctx)
	payments.OpenCreate()
	payments.Draft().Amount = "not-a-number"
	require.NoError(t, payments.Save(ctx)) // accepted: coerced to 0
	require.Len(t, payments.List(), 1)
	assert.Equal(t, 0.0, payments.List()[0].Amount)
}

func TestOfficeExpenseGarbageAmountRejected(t *testing.T) {
	api := newEnv(t)
	ctx := context.Background()

	expenses := OfficeExpenses(api)
	expenses.Load(ctx)
	expenses.OpenCreate()
	assert.Equal(t, time.Now().Format("2006-01-02"), expenses.Draft().Date)

	expenses.Draft().Category = "Rent"
	expenses.Draft().Amount = "abc" // no zero fallback on this page
	require.Error(t, expenses.Save(ctx))
	assert.Equal(t, listpage.FormOpen, expenses.State())
	assert.Equal(t, "Amount is required", expenses.Err())
	assert.Empty(t, expenses.List())

	expenses.Draft().Amount = "2500"
	require.NoError(t, expenses.Save(ctx))
	require.Len(t, expenses.List(), 1)
	assert.Equal(t, 2500.0, expenses.List()[0].Amount)
}

func TestSalaryDefaultsAndGarbageAmountRejected(t *testing.T) {
	api := newEnv(t)
	ctx := context.Background()

	employees := Employees(api)
	employees.Load(ctx)
	employees.OpenCreate()
	employees.Draft().Name = "Ravi"
	require.NoError(t, employees.Save(ctx))

	salaries := Salaries(api)
	salaries.Load(ctx)
	require.True(t, salaries.CanCreate())

	now := time.Now()
	salaries.OpenCreate()
	assert.Equal(t, employees.List()[0].Id, salaries.Draft().EmployeeID)
	assert.Equal(t, now.Year(), salaries.Draft().Year)
	assert.Equal(t, now.Format("2006-01-02"), salaries.Draft().PaidDate)

	salaries.Draft().Amount = "abc"
	require.Error(t, salaries.Save(ctx))
	assert.Equal(t, listpage.FormOpen, salaries.State())
	assert.Equal(t, "Amount is required", salaries.Err())

	salaries.Draft().Amount = "18000"
	require.NoError(t, salaries.Save(ctx))
	require.Len(t, salaries.List(), 1)
	assert.Equal(t, 18000.0, salaries.List()[0].Amount)
	assert.Equal(t, "Ravi", salaries.List()[0].Employee_name)
}

func TestEditReplacesAllFields(t *testing.T) {
	api := newEnv(t)
	ctx := context.Background()

	employees := Employees(api)
	employees.Load(ctx)
	employees.OpenCreate()
	employees.Draft().Name = "Sunita"
	employees.Draft().Role = "Accountant"
	employees.Draft().Contact = "98765"
	require.NoError(t, employees.Save(ctx))

	employees.OpenEdit(employees.List()[0])
	employees.Draft().Role = "Manager"
	employees.Draft().Contact = "" // cleared field must clear on the backend too
	require.NoError(t, employees.Save(ctx))

	require.Len(t, employees.List(), 1)
	assert.Equal(t, "Sunita", employees.List()[0].Name)
	assert.Equal(t, "Manager", employees.List()[0].Role)
	assert.Equal(t, "", employees.List()[0].Contact)
}

func TestDeleteRemovesFromReload(t *testing.T) {
	api := newEnv(t)
	ctx := context.Background()

	parties := Parties(api)
	parties.Load(ctx)
	parties.OpenCreate()
	parties.Draft().Name = "Verma Steel"
	require.NoError(t, parties.Save(ctx))
	id := parties.List()[0].Id

	parties.RequestDelete(id)
	require.NoError(t, parties.ConfirmDelete(ctx))
	assert.Empty(t, parties.List())

	// the id is gone now; a second attempt is a request error, not a crash
	parties.RequestDelete(id)
	require.Error(t, parties.ConfirmDelete(ctx))
	assert.Equal(t, "Party not found", parties.Err())
}
