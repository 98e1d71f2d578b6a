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

// TestUsersDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestUsersDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestUser(t, v1.UserEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/users", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestUsersOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestUsersOptions() {
	tests := []struct {
		name   string
		id     string // path at the /v1/users endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No user with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"User exists", createTestUser(suite.T(), v1.UserEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/users", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestUsersCreate verifies defaults and validation on creation.
func (suite *TestSuiteStandard) TestUsersCreate() {
	tests := []struct {
		name     string
		user     v1.UserEditable
		status   int
		currency string
		theme    models.Theme
	}{
		{"Defaults", v1.UserEditable{Name: "Ida"}, http.StatusCreated, "EUR", models.ThemeSystem},
		{"Explicit values", v1.UserEditable{Name: "Ole", Currency: "NOK", Theme: models.ThemeDark}, http.StatusCreated, "NOK", models.ThemeDark},
		{"Invalid currency", v1.UserEditable{Name: "Nope", Currency: "Gold"}, http.StatusBadRequest, "", ""},
		{"Invalid theme", v1.UserEditable{Name: "Nope", Theme: "neon"}, http.StatusBadRequest, "", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			user := createTestUser(t, tt.user, tt.status)

			if tt.status == http.StatusCreated {
				assert.Equal(t, tt.currency, user.Data.Currency)
				assert.Equal(t, tt.theme, user.Data.Theme)
			}
		})
	}
}

// TestUsersCreateDuplicateName verifies that user names are unique.
func (suite *TestSuiteStandard) TestUsersCreateDuplicateName() {
	createTestUser(suite.T(), v1.UserEditable{Name: "Ida"})
	createTestUser(suite.T(), v1.UserEditable{Name: "Ida"}, http.StatusBadRequest)
}

// TestUsersGetFilter verifies that filtering works correctly.
func (suite *TestSuiteStandard) TestUsersGetFilter() {
	_ = createTestUser(suite.T(), v1.UserEditable{Name: "Ida", Note: "Grown-up", Currency: "EUR"})
	_ = createTestUser(suite.T(), v1.UserEditable{Name: "Ole", Currency: "NOK"})
	_ = createTestUser(suite.T(), v1.UserEditable{Name: "Siri", Note: "Allowance only", Currency: "NOK"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Currency", "currency=NOK", 2},
		{"Name", "name=Ida", 1},
		{"Name without match", "name=Martha", 0},
		{"Search in note", "search=allowance", 1},
		{"Empty note", "note=", 1},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/users?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.UserListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data))
		})
	}
}

// TestUsersGetSingle verifies that requests for a single user are
// handled correctly.
func (suite *TestSuiteStandard) TestUsersGetSingle() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing user", user.Data.ID.String(), http.StatusOK},
		{"No user with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "definitely-not-a-UUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/users/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestUsersUpdate verifies that PATCH updates only the fields the
// request sets.
func (suite *TestSuiteStandard) TestUsersUpdate() {
	user := createTestUser(suite.T(), v1.UserEditable{Name: "Ida", Note: "Keep me"})

	r := test.Request(suite.T(), http.MethodPatch, user.Data.Links.Self, map[string]any{
		"theme": "light",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), models.ThemeLight, updated.Data.Theme)
	assert.Equal(suite.T(), "Keep me", updated.Data.Note)
}

// TestUsersUpdateInvalid verifies that invalid updates are rejected.
func (suite *TestSuiteStandard) TestUsersUpdateInvalid() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	r := test.Request(suite.T(), http.MethodPatch, user.Data.Links.Self, map[string]any{
		"currency": "NotACurrency",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestUsersDelete verifies that users can be deleted.
func (suite *TestSuiteStandard) TestUsersDelete() {
	user := createTestUser(suite.T(), v1.UserEditable{})

	r := test.Request(suite.T(), http.MethodDelete, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, user.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
