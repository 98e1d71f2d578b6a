package v1

import (
	"fmt"
	"time"

	"github.com/hearthbudget/backend/internal/models"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseEditable represents all user configurable parameters
type ExpenseEditable struct {
	Description    string          `json:"description" example:"Weekly groceries" default:""`                      // Description of the expense
	Date           time.Time       `json:"date" example:"2026-03-07T00:00:00Z"`                                    // Day the expense occurred
	Amount         decimal.Decimal `json:"amount" example:"47.13" minimum:"0.00000001" multipleOf:"0.00000001"`    // Amount of the expense
	Currency       string          `json:"currency" example:"EUR" default:""`                                      // Currency of the amount. Empty means the owner's display currency
	CategoryID     uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`              // Category the expense counts against
	UserID         *uuid.UUID      `json:"userId" example:"d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`                  // Owning user. Exactly one of userId and sharedBudgetId must be set
	SharedBudgetID *uuid.UUID      `json:"sharedBudgetId" example:"ab01be95-3a1f-4038-9b64-b9da5d6fa573"`          // Owning shared budget
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Description:    editable.Description,
		Date:           editable.Date,
		Amount:         editable.Amount,
		Currency:       editable.Currency,
		CategoryID:     editable.CategoryID,
		UserID:         editable.UserID,
		SharedBudgetID: editable.SharedBudgetID,
	}
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/d89a4f6b-381d-4a64-93d0-bf304d419822"`        // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category the expense counts against
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Links ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	return Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Description:    model.Description,
			Date:           model.Date,
			Amount:         model.Amount,
			Currency:       model.Currency,
			CategoryID:     model.CategoryID,
			UserID:         model.UserID,
			SharedBudgetID: model.SharedBudgetID,
		},
		Links: ExpenseLinks{
			Self:     fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of Expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`                                                          // List of the created Expenses or their respective error
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`                                                          // Data for the Expense
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	CategoryID     hb_uuid.UUID `form:"category"`                        // By ID of the category
	UserID         hb_uuid.UUID `form:"user"`                            // By ID of the owning user
	SharedBudgetID hb_uuid.UUID `form:"sharedBudget"`                    // By ID of the owning shared budget
	Currency       string       `form:"currency"`                        // By currency
	Description    string       `form:"description" filterField:"false"` // By glob pattern on the description, e.g. *groceries*
	FromDate       time.Time    `form:"fromDate" filterField:"false"`    // Expenses at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.
	UntilDate      time.Time    `form:"untilDate" filterField:"false"`   // Expenses before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided.
	Month          string       `form:"month" filterField:"false"`       // By month the expense date falls into, YYYY-MM format
	Offset         uint         `form:"offset" filterField:"false"`      // The offset of the first Expense returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`       // Maximum number of Expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() (models.Expense, error) {
	var userID, sharedBudgetID *uuid.UUID
	if f.UserID.UUID != uuid.Nil {
		userID = &f.UserID.UUID
	}
	if f.SharedBudgetID.UUID != uuid.Nil {
		sharedBudgetID = &f.SharedBudgetID.UUID
	}

	return models.Expense{
		CategoryID:     f.CategoryID.UUID,
		UserID:         userID,
		SharedBudgetID: sharedBudgetID,
		Currency:       f.Currency,
	}, nil
}
