package v1

import (
	"fmt"

	"github.com/hearthbudget/backend/internal/models"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SharedBudgetEditable represents all user configurable parameters
type SharedBudgetEditable struct {
	Name     string `json:"name" example:"Family" default:""`                 // Name of the shared budget
	Note     string `json:"note" example:"Our common expenses" default:""`    // Notes about the shared budget
	Currency string `json:"currency" example:"EUR" default:"EUR"`             // Display currency, ISO 4217
}

func (editable SharedBudgetEditable) model() models.SharedBudget {
	return models.SharedBudget{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
	}
}

type SharedBudgetLinks struct {
	Self       string `json:"self" example:"https://example.com/api/v1/shared-budgets/ab01be95-3a1f-4038-9b64-b9da5d6fa573"`                 // The shared budget itself
	Members    string `json:"members" example:"https://example.com/api/v1/shared-budgets/ab01be95-3a1f-4038-9b64-b9da5d6fa573/members"`      // Members of this shared budget
	Categories string `json:"categories" example:"https://example.com/api/v1/categories?sharedBudget=ab01be95-3a1f-4038-9b64-b9da5d6fa573"` // Categories of this shared budget
	Expenses   string `json:"expenses" example:"https://example.com/api/v1/expenses?sharedBudget=ab01be95-3a1f-4038-9b64-b9da5d6fa573"`     // Expenses of this shared budget
	Months     string `json:"months" example:"https://example.com/api/v1/months?sharedBudget=ab01be95-3a1f-4038-9b64-b9da5d6fa573"`         // Month computations for this shared budget
}

type SharedBudget struct {
	models.DefaultModel
	SharedBudgetEditable
	Links SharedBudgetLinks `json:"links"`
}

func newSharedBudget(c *gin.Context, model models.SharedBudget) SharedBudget {
	url := c.GetString(string(models.DBContextURL))

	return SharedBudget{
		DefaultModel: model.DefaultModel,
		SharedBudgetEditable: SharedBudgetEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
		},
		Links: SharedBudgetLinks{
			Self:       fmt.Sprintf("%s/v1/shared-budgets/%s", url, model.ID),
			Members:    fmt.Sprintf("%s/v1/shared-budgets/%s/members", url, model.ID),
			Categories: fmt.Sprintf("%s/v1/categories?sharedBudget=%s", url, model.ID),
			Expenses:   fmt.Sprintf("%s/v1/expenses?sharedBudget=%s", url, model.ID),
			Months:     fmt.Sprintf("%s/v1/months?sharedBudget=%s", url, model.ID),
		},
	}
}

type SharedBudgetListResponse struct {
	Data       []SharedBudget `json:"data"`                                                          // List of shared budgets
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type SharedBudgetCreateResponse struct {
	Data  []SharedBudgetResponse `json:"data"`                                                          // List of the created shared budgets or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (s *SharedBudgetCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, SharedBudgetResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type SharedBudgetResponse struct {
	Data  *SharedBudget `json:"data"`                                                          // Data for the shared budget
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type SharedBudgetQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By display currency
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first shared budget returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of shared budgets to return. Defaults to 50.
}

func (f SharedBudgetQueryFilter) model() (models.SharedBudget, error) {
	return models.SharedBudget{
		Currency: f.Currency,
	}, nil
}

// MemberEditable represents all user configurable parameters of a
// membership
type MemberEditable struct {
	UserID uuid.UUID         `json:"userId" example:"d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"` // ID of the member
	Role   models.MemberRole `json:"role" example:"member" default:"member"`                // Role of the member
}

type Member struct {
	models.SharedBudgetMember
	Links MemberLinks `json:"links"`
}

type MemberLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/shared-budgets/ab01be95-3a1f-4038-9b64-b9da5d6fa573/members/d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"` // The membership itself
	User string `json:"user" example:"https://example.com/api/v1/users/d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`                                                       // The member
}

func newMember(c *gin.Context, model models.SharedBudgetMember) Member {
	url := c.GetString(string(models.DBContextURL))

	return Member{
		SharedBudgetMember: model,
		Links: MemberLinks{
			Self: fmt.Sprintf("%s/v1/shared-budgets/%s/members/%s", url, model.SharedBudgetID, model.UserID),
			User: fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
		},
	}
}

type MemberListResponse struct {
	Data  []Member `json:"data"`                                                          // List of members
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type MemberResponse struct {
	Data  *Member `json:"data"`                                                          // Data for the membership
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type URIMember struct {
	ID     hb_uuid.UUID `uri:"id" binding:"required" format:"UUID"`     // ID of the shared budget
	UserID hb_uuid.UUID `uri:"userId" binding:"required" format:"UUID"` // ID of the member
}
