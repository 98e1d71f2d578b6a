package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// IncomeSource is a named income stream of a user, used when income is
// not a single lump sum.
type IncomeSource struct {
	DefaultModel
	UserID uuid.UUID `gorm:"uniqueIndex:income_source_user_name"` // Owning user
	Name   string    `gorm:"uniqueIndex:income_source_user_name"` // Name of the source, unique per user
	Note   string
}

func (s *IncomeSource) BeforeSave(_ *gorm.DB) error {
	s.Name = strings.TrimSpace(s.Name)
	s.Note = strings.TrimSpace(s.Note)
	return nil
}

// Income is the income recorded for a user in one month.
//
// IncomeSourceID is uuid.Nil for a lump sum not attributed to any
// source. At most one record exists per user, source and month.
type Income struct {
	DefaultModel
	UserID         uuid.UUID       `gorm:"uniqueIndex:income_user_source_month"` // Owning user
	IncomeSourceID uuid.UUID       `gorm:"uniqueIndex:income_user_source_month"` // Source of the income, uuid.Nil for a lump sum
	Month          types.Month     `gorm:"uniqueIndex:income_user_source_month"` // Month the income belongs to
	Amount         decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Currency       string // ISO 4217, empty means the user's display currency
	Note           string
}

func (i *Income) BeforeSave(tx *gorm.DB) error {
	i.Note = strings.TrimSpace(i.Note)

	if i.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if i.Currency != "" && !validCurrency(i.Currency) {
		return ErrCurrencyInvalid
	}

	// The source reference is not a database level foreign key since
	// uuid.Nil marks a lump sum, so check it here
	if i.IncomeSourceID != uuid.Nil {
		var source IncomeSource
		err := tx.First(&source, "id = ?", i.IncomeSourceID).Error
		if err != nil {
			if errors.Is(err, ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrIncomeSourceWrongUser
			}

			return err
		}

		if source.UserID != i.UserID {
			return ErrIncomeSourceWrongUser
		}
	}

	return nil
}
