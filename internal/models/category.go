package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/budget"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LimitType defines how a category's monthly limit is derived.
type LimitType string

const (
	// LimitFixed is an absolute amount.
	LimitFixed LimitType = "fixed"
	// LimitPercent is a percentage of income. With source rules
	// configured, the percentage is split across income sources.
	LimitPercent LimitType = "percent"
)

// Category represents a budget category.
//
// A category belongs to either a user or a shared budget, never both
// and never neither.
type Category struct {
	DefaultModel
	Name           string
	Note           string
	UserID         *uuid.UUID            `gorm:"check:owner_exactly_one,(user_id IS NULL) <> (shared_budget_id IS NULL)"` // Owning user, if personal
	SharedBudgetID *uuid.UUID            // Owning shared budget, if shared
	LimitType      LimitType             `example:"percent"`
	LimitValue     decimal.Decimal       `gorm:"type:DECIMAL(20,8)"` // Amount for fixed limits, percentage for percent limits
	Currency       string                // Currency of a fixed limit. Empty means the owner's display currency
	RolloverPolicy budget.RolloverPolicy `example:"same_category"`
	Archived       bool                  // Archived categories are not part of the month computation
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Note = strings.TrimSpace(c.Note)

	if (c.UserID == nil) == (c.SharedBudgetID == nil) {
		return ErrOwnerInvalid
	}

	if c.LimitType != LimitFixed && c.LimitType != LimitPercent {
		return ErrLimitTypeInvalid
	}

	if c.Currency != "" && !validCurrency(c.Currency) {
		return ErrCurrencyInvalid
	}

	if c.RolloverPolicy == "" {
		c.RolloverPolicy = budget.RolloverSameCategory
	}

	if !c.RolloverPolicy.Valid() {
		return ErrRolloverPolicyInvalid
	}

	return nil
}

// SourceRules returns the category's per-source percentage rules.
func (c Category) SourceRules(db *gorm.DB) ([]CategorySourceRule, error) {
	var rules []CategorySourceRule
	err := db.Where(&CategorySourceRule{CategoryID: c.ID}).Find(&rules).Error
	return rules, err
}

// LimitSpec resolves the stored limit configuration into its tagged
// variant for the allocation engine.
//
// The error reports database problems only. Misconfiguration is
// expressed by handing the engine a nil limit, which it turns into a
// zero effective limit plus a warning.
func (c Category) LimitSpec(db *gorm.DB) (budget.Limit, error) {
	switch c.LimitType {
	case LimitFixed:
		return budget.FixedLimit{Amount: c.LimitValue, Currency: c.Currency}, nil

	case LimitPercent:
		rules, err := c.SourceRules(db)
		if err != nil {
			return nil, err
		}

		if len(rules) == 0 {
			return budget.PercentLimit{Percentage: c.LimitValue}, nil
		}

		sourceRules := make([]budget.SourceRule, 0, len(rules))
		for _, rule := range rules {
			sourceRules = append(sourceRules, budget.SourceRule{
				SourceID:   rule.IncomeSourceID,
				Percentage: rule.Percentage,
			})
		}

		return budget.MultiSourceLimit{Rules: sourceRules}, nil
	}

	// Unknown limit type on an existing row, the engine reports it
	return nil, nil
}

// OwnedBy reports whether the category has the given owner.
func (c Category) OwnedBy(userID, sharedBudgetID *uuid.UUID) bool {
	if c.UserID != nil {
		return userID != nil && *c.UserID == *userID
	}

	return c.SharedBudgetID != nil && sharedBudgetID != nil && *c.SharedBudgetID == *sharedBudgetID
}

// CategorySourceRule allocates a percentage of one income source to a
// percent category. The engine trusts the configured percentages, they
// are not normalized or checked to sum to 100% across categories.
type CategorySourceRule struct {
	Timestamps
	CategoryID     uuid.UUID       `json:"categoryId" gorm:"primaryKey"`     // ID of the category
	IncomeSourceID uuid.UUID       `json:"incomeSourceId" gorm:"primaryKey"` // ID of the income source
	Percentage     decimal.Decimal `json:"percentage" gorm:"type:DECIMAL(20,8)" example:"50"`
}
