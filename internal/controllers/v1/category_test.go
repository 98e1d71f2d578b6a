package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/hearthbudget/backend/internal/controllers/v1"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestCategoriesCreate verifies ownership and limit validation on
// creation.
func (suite *TestSuiteStandard) TestCategoriesCreate() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	salary := createTestIncomeSource(suite.T(), v1.IncomeSourceEditable{UserID: ida.Data.ID, Name: "Salary"})

	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, ida.Data.ID)

	rule := v1.SourceRuleEditable{IncomeSourceID: salary.Data.ID, Percentage: decimal.NewFromInt(20)}

	tests := []struct {
		name       string
		category   v1.CategoryEditable
		actingUser uuid.UUID
		status     int
	}{
		{
			"Personal fixed limit",
			v1.CategoryEditable{UserID: &ida.Data.ID, LimitType: models.LimitFixed, LimitValue: decimal.NewFromInt(5000)},
			uuid.Nil,
			http.StatusCreated,
		},
		{
			"Personal percent limit",
			v1.CategoryEditable{UserID: &ida.Data.ID, LimitType: models.LimitPercent, LimitValue: decimal.NewFromInt(30)},
			uuid.Nil,
			http.StatusCreated,
		},
		{
			"Percent limit with source rules",
			v1.CategoryEditable{UserID: &ida.Data.ID, LimitType: models.LimitPercent, SourceRules: []v1.SourceRuleEditable{rule}},
			uuid.Nil,
			http.StatusCreated,
		},
		{
			"Source rules on a fixed limit",
			v1.CategoryEditable{UserID: &ida.Data.ID, LimitType: models.LimitFixed, SourceRules: []v1.SourceRuleEditable{rule}},
			uuid.Nil,
			http.StatusBadRequest,
		},
		{
			"Both owners",
			v1.CategoryEditable{UserID: &ida.Data.ID, SharedBudgetID: &sharedBudget.Data.ID},
			uuid.Nil,
			http.StatusBadRequest,
		},
		{
			"No owner",
			v1.CategoryEditable{},
			uuid.Nil,
			http.StatusBadRequest,
		},
		{
			"Invalid rollover policy",
			v1.CategoryEditable{UserID: &ida.Data.ID, RolloverPolicy: "into_the_sea"},
			uuid.Nil,
			http.StatusBadRequest,
		},
		{
			"Shared without acting user",
			v1.CategoryEditable{SharedBudgetID: &sharedBudget.Data.ID},
			uuid.Nil,
			http.StatusBadRequest,
		},
		{
			"Shared by the owner",
			v1.CategoryEditable{SharedBudgetID: &sharedBudget.Data.ID},
			ida.Data.ID,
			http.StatusCreated,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestCategory(t, tt.category, tt.actingUser, tt.status)
		})
	}
}

// TestCategoriesCreateSourceRules verifies that source rules are
// persisted and returned.
func (suite *TestSuiteStandard) TestCategoriesCreateSourceRules() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	salary := createTestIncomeSource(suite.T(), v1.IncomeSourceEditable{UserID: user.Data.ID, Name: "Salary"})
	sideGig := createTestIncomeSource(suite.T(), v1.IncomeSourceEditable{UserID: user.Data.ID, Name: "Side gig"})

	category := createTestCategory(suite.T(), v1.CategoryEditable{
		UserID:    &user.Data.ID,
		LimitType: models.LimitPercent,
		SourceRules: []v1.SourceRuleEditable{
			{IncomeSourceID: salary.Data.ID, Percentage: decimal.NewFromInt(10)},
			{IncomeSourceID: sideGig.Data.ID, Percentage: decimal.NewFromInt(50)},
		},
	}, uuid.Nil)

	assert.Len(suite.T(), category.Data.SourceRules, 2)
}

// TestCategoriesSharedForbidden verifies that viewers and non-members
// cannot create categories for a shared budget.
func (suite *TestSuiteStandard) TestCategoriesSharedForbidden() {
	owner := createTestUser(suite.T(), v1.UserEditable{})
	viewer := createTestUser(suite.T(), v1.UserEditable{})
	outsider := createTestUser(suite.T(), v1.UserEditable{})

	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, owner.Data.ID)
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: viewer.Data.ID, Role: models.RoleViewer}, owner.Data.ID)

	createTestCategory(suite.T(), v1.CategoryEditable{SharedBudgetID: &sharedBudget.Data.ID}, viewer.Data.ID, http.StatusForbidden)
	createTestCategory(suite.T(), v1.CategoryEditable{SharedBudgetID: &sharedBudget.Data.ID}, outsider.Data.ID, http.StatusForbidden)
}

// TestCategoriesGetFilter verifies that filtering works correctly.
func (suite *TestSuiteStandard) TestCategoriesGetFilter() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, ida.Data.ID)

	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries", UserID: &ida.Data.ID, LimitType: models.LimitPercent, LimitValue: decimal.NewFromInt(30)}, uuid.Nil)
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transport", UserID: &ida.Data.ID, LimitType: models.LimitFixed, LimitValue: decimal.NewFromInt(5000)}, uuid.Nil)
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Old hobby", UserID: &ida.Data.ID, Archived: true}, uuid.Nil)
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Household", SharedBudgetID: &sharedBudget.Data.ID}, ida.Data.ID)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"User", fmt.Sprintf("user=%s", ida.Data.ID), 3},
		{"Shared budget", fmt.Sprintf("sharedBudget=%s", sharedBudget.Data.ID), 1},
		{"Limit type", "limitType=percent", 1},
		{"Archived", "archived=true", 1},
		{"Name", "name=Groceries", 1},
		{"Search", "search=hobby", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/categories?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data))
		})
	}
}

// TestCategoriesUpdate verifies updates, including replacing the
// source rules.
func (suite *TestSuiteStandard) TestCategoriesUpdate() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	salary := createTestIncomeSource(suite.T(), v1.IncomeSourceEditable{UserID: user.Data.ID, Name: "Salary"})

	category := createTestCategory(suite.T(), v1.CategoryEditable{
		UserID:     &user.Data.ID,
		LimitType:  models.LimitPercent,
		LimitValue: decimal.NewFromInt(30),
	}, uuid.Nil)

	r := test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"sourceRules": []map[string]any{
			{"incomeSourceId": salary.Data.ID, "percentage": "25"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Len(suite.T(), updated.Data.SourceRules, 1)

	// Switching to a fixed limit while rules exist in the same request
	// is rejected
	r = test.Request(suite.T(), http.MethodPatch, category.Data.Links.Self, map[string]any{
		"limitType": "fixed",
		"sourceRules": []map[string]any{
			{"incomeSourceId": salary.Data.ID, "percentage": "25"},
		},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestCategoriesUpdateSharedForbidden verifies that write roles are
// enforced on update.
func (suite *TestSuiteStandard) TestCategoriesUpdateSharedForbidden() {
	owner := createTestUser(suite.T(), v1.UserEditable{})
	viewer := createTestUser(suite.T(), v1.UserEditable{})

	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, owner.Data.ID)
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: viewer.Data.ID, Role: models.RoleViewer}, owner.Data.ID)

	category := createTestCategory(suite.T(), v1.CategoryEditable{SharedBudgetID: &sharedBudget.Data.ID}, owner.Data.ID)

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("%s?actingUser=%s", category.Data.Links.Self, viewer.Data.ID), map[string]any{
		"name": "Not allowed",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)
}

// TestCategoriesDelete verifies that categories can be deleted.
func (suite *TestSuiteStandard) TestCategoriesDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})
	category := createTestCategory(suite.T(), v1.CategoryEditable{UserID: &user.Data.ID}, uuid.Nil)

	r := test.Request(suite.T(), http.MethodDelete, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, category.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
