package v1

import (
	"fmt"

	"github.com/hearthbudget/backend/internal/budget"
	"github.com/hearthbudget/backend/internal/models"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SourceRuleEditable is one per-source percentage rule of a percent
// category.
type SourceRuleEditable struct {
	IncomeSourceID uuid.UUID       `json:"incomeSourceId" example:"0f0c43dc-0e01-4b08-8ab9-fb085aec9720"` // ID of the income source
	Percentage     decimal.Decimal `json:"percentage" example:"50"`                                       // Percentage of the source's income
}

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name           string                `json:"name" example:"Groceries" default:""`                                  // Name of the category
	Note           string                `json:"note" example:"Everything egible" default:""`                          // Notes about the category
	UserID         *uuid.UUID            `json:"userId" example:"d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`                // Owning user. Exactly one of userId and sharedBudgetId must be set
	SharedBudgetID *uuid.UUID            `json:"sharedBudgetId" example:"ab01be95-3a1f-4038-9b64-b9da5d6fa573"`        // Owning shared budget
	LimitType      models.LimitType      `json:"limitType" example:"percent" default:"fixed"`                          // How the monthly limit is derived
	LimitValue     decimal.Decimal       `json:"limitValue" example:"30"`                                              // Amount for fixed limits, percentage for percent limits
	Currency       string                `json:"currency" example:"USD" default:""`                                    // Currency of a fixed limit. Empty means the owner's display currency
	RolloverPolicy budget.RolloverPolicy `json:"rolloverPolicy" example:"same_category" default:"same_category"`       // What happens to the unused balance when the month is closed
	Archived       bool                  `json:"archived" example:"true" default:"false"`                              // Is the category archived?
	SourceRules    []SourceRuleEditable  `json:"sourceRules"`                                                          // Per-source percentage rules. Only valid on percent categories
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:           editable.Name,
		Note:           editable.Note,
		UserID:         editable.UserID,
		SharedBudgetID: editable.SharedBudgetID,
		LimitType:      editable.LimitType,
		LimitValue:     editable.LimitValue,
		Currency:       editable.Currency,
		RolloverPolicy: editable.RolloverPolicy,
		Archived:       editable.Archived,
	}
}

type CategoryLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`              // The category itself
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Expenses in this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, db *gorm.DB, model models.Category) (Category, error) {
	url := c.GetString(string(models.DBContextURL))

	category := Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:           model.Name,
			Note:           model.Note,
			UserID:         model.UserID,
			SharedBudgetID: model.SharedBudgetID,
			LimitType:      model.LimitType,
			LimitValue:     model.LimitValue,
			Currency:       model.Currency,
			RolloverPolicy: model.RolloverPolicy,
			Archived:       model.Archived,
		},
		Links: CategoryLinks{
			Self:     fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Expenses: fmt.Sprintf("%s/v1/expenses?category=%s", url, model.ID),
		},
	}

	rules, err := model.SourceRules(db)
	if err != nil {
		return Category{}, err
	}

	category.SourceRules = make([]SourceRuleEditable, 0, len(rules))
	for _, rule := range rules {
		category.SourceRules = append(category.SourceRules, SourceRuleEditable{
			IncomeSourceID: rule.IncomeSourceID,
			Percentage:     rule.Percentage,
		})
	}

	return category, nil
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	UserID         hb_uuid.UUID     `form:"user"`                       // By ID of the owning user
	SharedBudgetID hb_uuid.UUID     `form:"sharedBudget"`               // By ID of the owning shared budget
	Name           string           `form:"name" filterField:"false"`   // By name
	Note           string           `form:"note" filterField:"false"`   // By note
	LimitType      models.LimitType `form:"limitType"`                  // By limit type
	Archived       bool             `form:"archived"`                   // Is the Category archived?
	Search         string           `form:"search" filterField:"false"` // By string in name or note
	Offset         uint             `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit          int              `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	var userID, sharedBudgetID *uuid.UUID
	if f.UserID.UUID != uuid.Nil {
		userID = &f.UserID.UUID
	}
	if f.SharedBudgetID.UUID != uuid.Nil {
		sharedBudgetID = &f.SharedBudgetID.UUID
	}

	return models.Category{
		UserID:         userID,
		SharedBudgetID: sharedBudgetID,
		LimitType:      f.LimitType,
		Archived:       f.Archived,
	}, nil
}
