package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/hearthbudget/backend/internal/controllers/v1"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestExpensesCreate verifies ownership validation on creation.
func (suite *TestSuiteStandard) TestExpensesCreate() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	ole := createTestUser(suite.T(), v1.UserEditable{})

	groceries := createTestCategory(suite.T(), v1.CategoryEditable{UserID: &ida.Data.ID}, uuid.Nil)

	date := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expense v1.ExpenseEditable
		status  int
	}{
		{
			"Valid expense",
			v1.ExpenseEditable{Description: "Weekly groceries", Date: date, Amount: decimal.NewFromInt(100), CategoryID: groceries.Data.ID, UserID: &ida.Data.ID},
			http.StatusCreated,
		},
		{
			"Category of another user",
			v1.ExpenseEditable{Date: date, Amount: decimal.NewFromInt(100), CategoryID: groceries.Data.ID, UserID: &ole.Data.ID},
			http.StatusBadRequest,
		},
		{
			"No category",
			v1.ExpenseEditable{Date: date, Amount: decimal.NewFromInt(100), UserID: &ida.Data.ID},
			http.StatusNotFound,
		},
		{
			"Negative amount",
			v1.ExpenseEditable{Date: date, Amount: decimal.NewFromInt(-100), CategoryID: groceries.Data.ID, UserID: &ida.Data.ID},
			http.StatusBadRequest,
		},
		{
			"No owner",
			v1.ExpenseEditable{Date: date, Amount: decimal.NewFromInt(100), CategoryID: groceries.Data.ID},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestExpense(t, tt.expense, uuid.Nil, tt.status)
		})
	}
}

// TestExpensesSharedForbidden verifies that write roles are enforced
// for expenses of a shared budget.
func (suite *TestSuiteStandard) TestExpensesSharedForbidden() {
	owner := createTestUser(suite.T(), v1.UserEditable{})
	member := createTestUser(suite.T(), v1.UserEditable{})
	viewer := createTestUser(suite.T(), v1.UserEditable{})

	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, owner.Data.ID)
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: member.Data.ID, Role: models.RoleMember}, owner.Data.ID)
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: viewer.Data.ID, Role: models.RoleViewer}, owner.Data.ID)

	household := createTestCategory(suite.T(), v1.CategoryEditable{SharedBudgetID: &sharedBudget.Data.ID}, owner.Data.ID)

	expense := v1.ExpenseEditable{
		Date:           time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromInt(100),
		CategoryID:     household.Data.ID,
		SharedBudgetID: &sharedBudget.Data.ID,
	}

	createTestExpense(suite.T(), expense, member.Data.ID)
	createTestExpense(suite.T(), expense, viewer.Data.ID, http.StatusForbidden)
}

// TestExpensesGetFilter verifies filtering, including the glob pattern
// on the description and the date ranges.
func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{UserID: &ida.Data.ID}, uuid.Nil)

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Weekly groceries", Date: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(47), CategoryID: groceries.Data.ID, UserID: &ida.Data.ID}, uuid.Nil)
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Groceries for the party", Date: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(93), CategoryID: groceries.Data.ID, UserID: &ida.Data.ID}, uuid.Nil)
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Bus ticket", Date: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(3), CategoryID: groceries.Data.ID, UserID: &ida.Data.ID}, uuid.Nil)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"User", fmt.Sprintf("user=%s", ida.Data.ID), 3},
		{"Category", fmt.Sprintf("category=%s", groceries.Data.ID), 3},
		{"Glob prefix", "description=Groceries*", 1},
		{"Glob contains", "description=*roceries*", 2},
		{"Glob without match", "description=*cinema*", 0},
		{"Month", "month=2026-03", 2},
		{"From date", "fromDate=2026-03-20T00:00:00Z", 2},
		{"Until date", "untilDate=2026-03-07T14:00:00Z", 1},
		{"Date range", "fromDate=2026-03-01T00:00:00Z&untilDate=2026-03-31T00:00:00Z", 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data))
		})
	}
}

// TestExpensesGlobPagination verifies that pagination is applied after
// the glob filter, not before.
func (suite *TestSuiteStandard) TestExpensesGlobPagination() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: &ida.Data.ID}, uuid.Nil)

	for i := 0; i < 5; i++ {
		_ = createTestExpense(suite.T(), v1.ExpenseEditable{
			Description: fmt.Sprintf("Groceries %d", i),
			Date:        time.Date(2026, 3, 1+i, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(10),
			CategoryID:  category.Data.ID,
			UserID:      &ida.Data.ID,
		}, uuid.Nil)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?description=Groceries*&limit=2&offset=2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), int64(5), response.Pagination.Total)
}

// TestExpensesUpdate verifies that expenses can be updated.
func (suite *TestSuiteStandard) TestExpensesUpdate() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: &ida.Data.ID}, uuid.Nil)

	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Description: "Weekly groceries",
		Date:        time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(47),
		CategoryID:  category.Data.ID,
		UserID:      &ida.Data.ID,
	}, uuid.Nil)

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"amount": "52.80",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromFloat(52.80)), "amount is %s", updated.Data.Amount)
}

// TestExpensesDelete verifies that expenses can be deleted.
func (suite *TestSuiteStandard) TestExpensesDelete() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: &ida.Data.ID}, uuid.Nil)

	expense := createTestExpense(suite.T(), v1.ExpenseEditable{
		Date:       time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(47),
		CategoryID: category.Data.ID,
		UserID:     &ida.Data.ID,
	}, uuid.Nil)

	r := test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
