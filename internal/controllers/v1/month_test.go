package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/hearthbudget/backend/internal/budget"
	v1 "github.com/hearthbudget/backend/internal/controllers/v1"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/hearthbudget/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestMonth(t *testing.T, query string, expectedStatus ...int) v1.MonthResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/months?%s", query), "")
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.MonthResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func closeTestMonth(t *testing.T, query string, expectedStatus ...int) v1.MonthResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/months?%s", query), "")
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.MonthResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

// categoryMonth returns the computed state for the named category and
// fails the test if it is missing.
func categoryMonth(t *testing.T, response v1.MonthResponse, name string) budget.CategoryMonth {
	require.NotNil(t, response.Data)

	for _, category := range response.Data.Categories {
		if category.Name == name {
			return category
		}
	}

	require.Failf(t, "category missing from month", "no category named %q", name)
	return budget.CategoryMonth{}
}

// TestMonthValidation verifies the owner and month query parameters.
func (suite *TestSuiteStandard) TestMonthValidation() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, ida.Data.ID)

	tests := []struct {
		name   string
		query  string
		status int
	}{
		{"No month", fmt.Sprintf("user=%s", ida.Data.ID), http.StatusBadRequest},
		{"Unparseable month", fmt.Sprintf("month=March&user=%s", ida.Data.ID), http.StatusBadRequest},
		{"No owner", "month=2026-03", http.StatusBadRequest},
		{"Both owners", fmt.Sprintf("month=2026-03&user=%s&sharedBudget=%s", ida.Data.ID, sharedBudget.Data.ID), http.StatusBadRequest},
		{"No user with this ID", fmt.Sprintf("month=2026-03&user=%s", uuid.New()), http.StatusNotFound},
		{"Shared budget without acting user", fmt.Sprintf("month=2026-03&sharedBudget=%s", sharedBudget.Data.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			getTestMonth(t, tt.query, tt.status)
		})
	}
}

// TestMonthCompute verifies the fixed and percent limits against the
// month's records, closing with rollover and reopening.
func (suite *TestSuiteStandard) TestMonthCompute() {
	ida := createTestUser(suite.T(), v1.UserEditable{Currency: "EUR"})

	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: ida.Data.ID, Month: types.NewMonth(2026, time.March), Amount: decimal.NewFromInt(50000)})

	transport := createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Transport", UserID: &ida.Data.ID,
		LimitType: models.LimitFixed, LimitValue: decimal.NewFromInt(5000),
		RolloverPolicy: budget.RolloverSameCategory,
	}, uuid.Nil)

	groceries := createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Groceries", UserID: &ida.Data.ID,
		LimitType: models.LimitPercent, LimitValue: decimal.NewFromInt(30),
		RolloverPolicy: budget.RolloverSameCategory,
	}, uuid.Nil)

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(4200),
		CategoryID: transport.Data.ID, UserID: &ida.Data.ID,
	}, uuid.Nil)
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Date: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(16000),
		CategoryID: groceries.Data.ID, UserID: &ida.Data.ID,
	}, uuid.Nil)

	march := fmt.Sprintf("month=2026-03&user=%s", ida.Data.ID)
	april := fmt.Sprintf("month=2026-04&user=%s", ida.Data.ID)

	// March: the fixed limit has money left, the percent limit is
	// overspent
	month := getTestMonth(suite.T(), march)

	transportMarch := categoryMonth(suite.T(), month, "Transport")
	assert.True(suite.T(), transportMarch.EffectiveLimit.Equal(decimal.NewFromInt(5000)), "limit is %s", transportMarch.EffectiveLimit)
	assert.True(suite.T(), transportMarch.Remaining.Equal(decimal.NewFromInt(800)), "remaining is %s", transportMarch.Remaining)
	assert.False(suite.T(), transportMarch.Overspent)

	groceriesMarch := categoryMonth(suite.T(), month, "Groceries")
	assert.True(suite.T(), groceriesMarch.EffectiveLimit.Equal(decimal.NewFromInt(15000)), "limit is %s", groceriesMarch.EffectiveLimit)
	assert.True(suite.T(), groceriesMarch.Remaining.Equal(decimal.NewFromInt(-1000)), "remaining is %s", groceriesMarch.Remaining)
	assert.True(suite.T(), groceriesMarch.Overspent)

	// Close March and check the April carry-ins
	_ = closeTestMonth(suite.T(), march)

	month = getTestMonth(suite.T(), april)

	transportApril := categoryMonth(suite.T(), month, "Transport")
	assert.True(suite.T(), transportApril.CarryIn.Equal(decimal.NewFromInt(800)), "carry-in is %s", transportApril.CarryIn)
	assert.True(suite.T(), transportApril.Remaining.Equal(decimal.NewFromInt(5800)), "remaining is %s", transportApril.Remaining)

	// Overspend is never carried forward
	groceriesApril := categoryMonth(suite.T(), month, "Groceries")
	assert.True(suite.T(), groceriesApril.CarryIn.IsZero(), "carry-in is %s", groceriesApril.CarryIn)

	// Closing again with unchanged inputs is idempotent
	_ = closeTestMonth(suite.T(), march)

	month = getTestMonth(suite.T(), april)
	transportApril = categoryMonth(suite.T(), month, "Transport")
	assert.True(suite.T(), transportApril.CarryIn.Equal(decimal.NewFromInt(800)), "carry-in is %s", transportApril.CarryIn)

	// Reopening March removes the April carry-in
	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/months?%s", march), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	month = getTestMonth(suite.T(), april)
	transportApril = categoryMonth(suite.T(), month, "Transport")
	assert.True(suite.T(), transportApril.CarryIn.IsZero(), "carry-in is %s", transportApril.CarryIn)
}

// TestMonthToReserve verifies the to_reserve rollover policy.
func (suite *TestSuiteStandard) TestMonthToReserve() {
	ida := createTestUser(suite.T(), v1.UserEditable{})

	savings := createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Savings", UserID: &ida.Data.ID,
		LimitType: models.LimitFixed, LimitValue: decimal.NewFromInt(1000),
		RolloverPolicy: budget.RolloverToReserve,
	}, uuid.Nil)

	_ = createTestExpense(suite.T(), v1.ExpenseEditable{
		Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(400),
		CategoryID: savings.Data.ID, UserID: &ida.Data.ID,
	}, uuid.Nil)

	march := fmt.Sprintf("month=2026-03&user=%s", ida.Data.ID)

	month := closeTestMonth(suite.T(), march)
	assert.True(suite.T(), month.Data.ToReserve.Equal(decimal.NewFromInt(600)), "toReserve is %s", month.Data.ToReserve)

	// The reserve never seeds a carry-in
	month = getTestMonth(suite.T(), fmt.Sprintf("month=2026-04&user=%s", ida.Data.ID))
	savingsApril := categoryMonth(suite.T(), month, "Savings")
	assert.True(suite.T(), savingsApril.CarryIn.IsZero(), "carry-in is %s", savingsApril.CarryIn)
}

// TestMonthArchivedExcluded verifies that archived categories are not
// part of the computation.
func (suite *TestSuiteStandard) TestMonthArchivedExcluded() {
	ida := createTestUser(suite.T(), v1.UserEditable{})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Active", UserID: &ida.Data.ID}, uuid.Nil)
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Dormant", UserID: &ida.Data.ID, Archived: true}, uuid.Nil)

	month := getTestMonth(suite.T(), fmt.Sprintf("month=2026-03&user=%s", ida.Data.ID))

	assert.Len(suite.T(), month.Data.Categories, 1)
	assert.Equal(suite.T(), "Active", month.Data.Categories[0].Name)
}

// TestMonthMultiSource verifies percentage splits across income
// sources.
func (suite *TestSuiteStandard) TestMonthMultiSource() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	salary := createTestIncomeSource(suite.T(), v1.IncomeSourceEditable{UserID: ida.Data.ID, Name: "Salary"})
	sideGig := createTestIncomeSource(suite.T(), v1.IncomeSourceEditable{UserID: ida.Data.ID, Name: "Side gig"})

	march := types.NewMonth(2026, time.March)
	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: ida.Data.ID, IncomeSourceID: salary.Data.ID, Month: march, Amount: decimal.NewFromInt(2000)})
	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: ida.Data.ID, IncomeSourceID: sideGig.Data.ID, Month: march, Amount: decimal.NewFromInt(1000)})

	// A lump sum does not match any source rule
	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: ida.Data.ID, Month: march, Amount: decimal.NewFromInt(500)})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Rent", UserID: &ida.Data.ID,
		LimitType: models.LimitPercent,
		SourceRules: []v1.SourceRuleEditable{
			{IncomeSourceID: salary.Data.ID, Percentage: decimal.NewFromInt(50)},
			{IncomeSourceID: sideGig.Data.ID, Percentage: decimal.NewFromInt(10)},
		},
	}, uuid.Nil)

	month := getTestMonth(suite.T(), fmt.Sprintf("month=2026-03&user=%s", ida.Data.ID))

	rent := categoryMonth(suite.T(), month, "Rent")
	assert.True(suite.T(), rent.EffectiveLimit.Equal(decimal.NewFromInt(1100)), "limit is %s", rent.EffectiveLimit)
}

// TestMonthCurrencyConversion verifies that foreign amounts are
// converted into the display currency, with a warning when no rate
// exists.
func (suite *TestSuiteStandard) TestMonthCurrencyConversion() {
	ida := createTestUser(suite.T(), v1.UserEditable{Currency: "EUR"})
	_ = createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "USD", Quote: "EUR", Rate: decimal.NewFromFloat(0.9)})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Streaming", UserID: &ida.Data.ID,
		LimitType: models.LimitFixed, LimitValue: decimal.NewFromInt(1000), Currency: "USD",
	}, uuid.Nil)
	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Imported", UserID: &ida.Data.ID,
		LimitType: models.LimitFixed, LimitValue: decimal.NewFromInt(100), Currency: "NOK",
	}, uuid.Nil)

	month := getTestMonth(suite.T(), fmt.Sprintf("month=2026-03&user=%s", ida.Data.ID))

	streaming := categoryMonth(suite.T(), month, "Streaming")
	assert.True(suite.T(), streaming.EffectiveLimit.Equal(decimal.NewFromInt(900)), "limit is %s", streaming.EffectiveLimit)

	// No NOK rate: the amount stays unconverted and a warning is
	// reported
	imported := categoryMonth(suite.T(), month, "Imported")
	assert.True(suite.T(), imported.EffectiveLimit.Equal(decimal.NewFromInt(100)), "limit is %s", imported.EffectiveLimit)
	assert.Len(suite.T(), month.Data.Warnings, 1)
}

// TestMonthShared verifies the shared budget month, including the
// member income sum and role enforcement.
func (suite *TestSuiteStandard) TestMonthShared() {
	owner := createTestUser(suite.T(), v1.UserEditable{})
	member := createTestUser(suite.T(), v1.UserEditable{})
	viewer := createTestUser(suite.T(), v1.UserEditable{})
	outsider := createTestUser(suite.T(), v1.UserEditable{})

	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{Currency: "EUR"}, owner.Data.ID)
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: member.Data.ID, Role: models.RoleMember}, owner.Data.ID)
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: viewer.Data.ID, Role: models.RoleViewer}, owner.Data.ID)

	march := types.NewMonth(2026, time.March)
	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: owner.Data.ID, Month: march, Amount: decimal.NewFromInt(1000)})
	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: member.Data.ID, Month: march, Amount: decimal.NewFromInt(500)})
	_ = createTestIncome(suite.T(), v1.IncomeEditable{UserID: outsider.Data.ID, Month: march, Amount: decimal.NewFromInt(9000)})

	_ = createTestCategory(suite.T(), v1.CategoryEditable{
		Name: "Household", SharedBudgetID: &sharedBudget.Data.ID,
		LimitType: models.LimitPercent, LimitValue: decimal.NewFromInt(10),
	}, owner.Data.ID)

	query := fmt.Sprintf("month=2026-03&sharedBudget=%s&actingUser=%s", sharedBudget.Data.ID, viewer.Data.ID)

	// Viewers see the month but cannot close it
	month := getTestMonth(suite.T(), query)

	// Only member income counts: 10 percent of 1500
	household := categoryMonth(suite.T(), month, "Household")
	assert.True(suite.T(), household.EffectiveLimit.Equal(decimal.NewFromInt(150)), "limit is %s", household.EffectiveLimit)

	closeTestMonth(suite.T(), query, http.StatusForbidden)

	// Members can close, outsiders see nothing
	closeTestMonth(suite.T(), fmt.Sprintf("month=2026-03&sharedBudget=%s&actingUser=%s", sharedBudget.Data.ID, member.Data.ID))
	getTestMonth(suite.T(), fmt.Sprintf("month=2026-03&sharedBudget=%s&actingUser=%s", sharedBudget.Data.ID, outsider.Data.ID), http.StatusForbidden)
}

// TestMonthOptions verifies that OPTIONS requests are handled
// correctly.
func (suite *TestSuiteStandard) TestMonthOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, POST, DELETE", r.Header().Get("allow"))
}
