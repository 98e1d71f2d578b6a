package models

import (
	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/budget"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BudgetRollover is the per-category snapshot written when a month is
// closed. The rollover amount seeds the next month's carry-in.
//
// The primary key makes recomputation overwrite instead of duplicate.
type BudgetRollover struct {
	Timestamps
	CategoryID     uuid.UUID       `json:"categoryId" gorm:"primaryKey"` // ID of the category
	Category       Category        `json:"-"`
	Month          types.Month     `json:"month" gorm:"primaryKey" example:"2026-03"`
	LimitAmount    decimal.Decimal `json:"limitAmount" gorm:"type:DECIMAL(20,8)" example:"5000"`   // The effective limit the month was closed with
	SpentAmount    decimal.Decimal `json:"spentAmount" gorm:"type:DECIMAL(20,8)" example:"4200"`   // The amount spent in the month
	RolloverAmount decimal.Decimal `json:"rolloverAmount" gorm:"type:DECIMAL(20,8)" example:"800"` // The unused balance carried into the next month
}

// UpsertRollovers persists the engine's snapshot rows. Existing rows
// for the same category and month are overwritten, so closing a month
// twice with unchanged inputs is idempotent.
func UpsertRollovers(db *gorm.DB, rollovers []budget.Rollover) ([]BudgetRollover, error) {
	rows := make([]BudgetRollover, 0, len(rollovers))
	for _, rollover := range rollovers {
		rows = append(rows, BudgetRollover{
			CategoryID:     rollover.CategoryID,
			Month:          rollover.Month,
			LimitAmount:    rollover.LimitAmount,
			SpentAmount:    rollover.SpentAmount,
			RolloverAmount: rollover.RolloverAmount,
		})
	}

	if len(rows) == 0 {
		return rows, nil
	}

	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "category_id"}, {Name: "month"}},
		DoUpdates: clause.Assignments(map[string]any{
			"limit_amount":    gorm.Expr("excluded.limit_amount"),
			"spent_amount":    gorm.Expr("excluded.spent_amount"),
			"rollover_amount": gorm.Expr("excluded.rollover_amount"),
			"updated_at":      gorm.Expr("excluded.updated_at"),
			"deleted_at":      nil,
		}),
	}).Create(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// CarryIns returns the rollover amount per category from the month
// before month. Categories without a row, e.g. in their first month,
// are simply absent and default to a zero carry-in.
func CarryIns(db *gorm.DB, categoryIDs []uuid.UUID, month types.Month) (map[uuid.UUID]decimal.Decimal, error) {
	if len(categoryIDs) == 0 {
		return map[uuid.UUID]decimal.Decimal{}, nil
	}

	var rows []BudgetRollover
	err := db.
		Where("category_id IN ?", categoryIDs).
		Where("month = ?", month.Previous()).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	carryIns := make(map[uuid.UUID]decimal.Decimal, len(rows))
	for _, row := range rows {
		carryIns[row.CategoryID] = row.RolloverAmount
	}

	return carryIns, nil
}

// DeleteRollovers removes the snapshot rows for the given categories
// and month, reopening the month. The rows are derived data, so they
// are deleted permanently.
func DeleteRollovers(db *gorm.DB, categoryIDs []uuid.UUID, month types.Month) error {
	if len(categoryIDs) == 0 {
		return nil
	}

	return db.Unscoped().
		Where("category_id IN ?", categoryIDs).
		Where("month = ?", month).
		Delete(&BudgetRollover{}).Error
}
