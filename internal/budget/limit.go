package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Limit is the spending limit configuration of a category.
//
// It is a closed set of variants: FixedLimit, PercentLimit and
// MultiSourceLimit. A nil Limit marks a category whose stored
// configuration could not be resolved; the engine treats it as a zero
// limit and reports a warning.
type Limit interface {
	isLimit()
}

// FixedLimit is an absolute amount per month.
//
// If Currency is set and differs from the display currency, the amount
// is converted with the exchange rate supplied to the engine.
type FixedLimit struct {
	Amount   decimal.Decimal
	Currency string
}

func (FixedLimit) isLimit() {}

// PercentLimit is a percentage of the month's total income.
type PercentLimit struct {
	Percentage decimal.Decimal
}

func (PercentLimit) isLimit() {}

// MultiSourceLimit is a percentage split across named income sources.
// Sources without a rule do not contribute to the limit.
type MultiSourceLimit struct {
	Rules []SourceRule
}

func (MultiSourceLimit) isLimit() {}

// SourceRule allocates a percentage of one income source's amount.
type SourceRule struct {
	SourceID   uuid.UUID
	Percentage decimal.Decimal
}
