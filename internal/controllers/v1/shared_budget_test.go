package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/hearthbudget/backend/internal/controllers/v1"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestSharedBudgetsCreate verifies that the creating user becomes the
// owner of the shared budget.
func (suite *TestSuiteStandard) TestSharedBudgetsCreate() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{Name: "Family"}, ida.Data.ID)

	path := fmt.Sprintf("%s?actingUser=%s", sharedBudget.Data.Links.Members, ida.Data.ID)
	r := test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var members v1.MemberListResponse
	test.DecodeResponse(suite.T(), &r, &members)

	assert.Len(suite.T(), members.Data, 1)
	assert.Equal(suite.T(), ida.Data.ID, members.Data[0].UserID)
	assert.Equal(suite.T(), models.RoleOwner, members.Data[0].Role)
}

// TestSharedBudgetsCreateNoActingUser verifies that creation without an
// acting user is rejected.
func (suite *TestSuiteStandard) TestSharedBudgetsCreateNoActingUser() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/shared-budgets", []v1.SharedBudgetEditable{{Name: "Family"}})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestSharedBudgetsUpdateForbidden verifies that only owners may update
// or delete a shared budget.
func (suite *TestSuiteStandard) TestSharedBudgetsUpdateForbidden() {
	owner := createTestUser(suite.T(), v1.UserEditable{})
	member := createTestUser(suite.T(), v1.UserEditable{})

	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, owner.Data.ID)
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: member.Data.ID, Role: models.RoleMember}, owner.Data.ID)

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("%s?actingUser=%s", sharedBudget.Data.Links.Self, member.Data.ID), map[string]any{
		"name": "Not allowed",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s?actingUser=%s", sharedBudget.Data.Links.Self, member.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("%s?actingUser=%s", sharedBudget.Data.Links.Self, owner.Data.ID), map[string]any{
		"name": "Allowed",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

// TestSharedBudgetsMembers verifies membership management.
func (suite *TestSuiteStandard) TestSharedBudgetsMembers() {
	owner := createTestUser(suite.T(), v1.UserEditable{})
	member := createTestUser(suite.T(), v1.UserEditable{})
	outsider := createTestUser(suite.T(), v1.UserEditable{})

	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, owner.Data.ID)

	// Non-owners cannot add members
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: member.Data.ID, Role: models.RoleMember}, member.Data.ID, http.StatusForbidden)

	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: member.Data.ID, Role: models.RoleMember}, owner.Data.ID)

	// Members see the member list, outsiders do not
	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?actingUser=%s", sharedBudget.Data.Links.Members, member.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?actingUser=%s", sharedBudget.Data.Links.Members, outsider.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	// Adding the same user again is rejected
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: member.Data.ID, Role: models.RoleViewer}, owner.Data.ID, http.StatusBadRequest)
}

// TestSharedBudgetsMemberRoleChange verifies that roles can be changed
// by owners only.
func (suite *TestSuiteStandard) TestSharedBudgetsMemberRoleChange() {
	owner := createTestUser(suite.T(), v1.UserEditable{})
	member := createTestUser(suite.T(), v1.UserEditable{})

	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, owner.Data.ID)
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: member.Data.ID, Role: models.RoleViewer}, owner.Data.ID)

	memberPath := fmt.Sprintf("http://example.com/v1/shared-budgets/%s/members/%s", sharedBudget.Data.ID, member.Data.ID)

	// Viewers cannot promote themselves
	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("%s?actingUser=%s", memberPath, member.Data.ID), map[string]any{
		"role": "member",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("%s?actingUser=%s", memberPath, owner.Data.ID), map[string]any{
		"role": "member",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.MemberResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), models.RoleMember, updated.Data.Role)
}

// TestSharedBudgetsMemberDelete verifies that members can be removed
// and added again.
func (suite *TestSuiteStandard) TestSharedBudgetsMemberDelete() {
	owner := createTestUser(suite.T(), v1.UserEditable{})
	member := createTestUser(suite.T(), v1.UserEditable{})

	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, owner.Data.ID)
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: member.Data.ID, Role: models.RoleMember}, owner.Data.ID)

	memberPath := fmt.Sprintf("http://example.com/v1/shared-budgets/%s/members/%s", sharedBudget.Data.ID, member.Data.ID)

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s?actingUser=%s", memberPath, owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The removed user no longer sees the budget's members
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?actingUser=%s", sharedBudget.Data.Links.Members, member.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusForbidden)

	// Removing again is a 404
	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("%s?actingUser=%s", memberPath, owner.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The user can be added back
	createTestMember(suite.T(), sharedBudget.Data.ID, v1.MemberEditable{UserID: member.Data.ID, Role: models.RoleViewer}, owner.Data.ID)
}

// TestSharedBudgetsGetFilter verifies that filtering works correctly.
func (suite *TestSuiteStandard) TestSharedBudgetsGetFilter() {
	ida := createTestUser(suite.T(), v1.UserEditable{})

	_ = createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{Name: "Family", Currency: "EUR"}, ida.Data.ID)
	_ = createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{Name: "Cabin", Note: "Shared with the neighbors", Currency: "NOK"}, ida.Data.ID)

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Currency", "currency=NOK", 1},
		{"Name", "name=Family", 1},
		{"Search", "search=neighbors", 1},
		{"No match", "name=Commune", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/shared-budgets?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.SharedBudgetListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data))
		})
	}
}

// TestSharedBudgetsGetSingle verifies that requests for a single shared
// budget are handled correctly.
func (suite *TestSuiteStandard) TestSharedBudgetsGetSingle() {
	ida := createTestUser(suite.T(), v1.UserEditable{})
	sharedBudget := createTestSharedBudget(suite.T(), v1.SharedBudgetEditable{}, ida.Data.ID)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing shared budget", sharedBudget.Data.ID.String(), http.StatusOK},
		{"No shared budget with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "hearth", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/shared-budgets/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
