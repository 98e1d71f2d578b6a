package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single expense record.
//
// The owner must match the owner of the referenced category, so a
// shared category only ever aggregates shared expenses.
type Expense struct {
	DefaultModel
	Description    string
	Date           time.Time       // Day the expense occurred
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency       string          // ISO 4217, empty means the owner's display currency
	CategoryID     uuid.UUID       // Category the expense counts against
	Category       Category        `json:"-"`
	UserID         *uuid.UUID      `gorm:"check:owner_exactly_one,(user_id IS NULL) <> (shared_budget_id IS NULL)"` // Owning user, if personal
	SharedBudgetID *uuid.UUID      // Owning shared budget, if shared
}

func (e *Expense) BeforeSave(tx *gorm.DB) error {
	e.Description = strings.TrimSpace(e.Description)

	if (e.UserID == nil) == (e.SharedBudgetID == nil) {
		return ErrOwnerInvalid
	}

	if e.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if e.Currency != "" && !validCurrency(e.Currency) {
		return ErrCurrencyInvalid
	}

	var category Category
	err := tx.First(&category, "id = ?", e.CategoryID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w category matching your query", ErrResourceNotFound)
		}

		return err
	}

	if !category.OwnedBy(e.UserID, e.SharedBudgetID) {
		return ErrOwnerMismatch
	}

	return nil
}
