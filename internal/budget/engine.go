// Package budget implements the allocation engine.
//
// The engine is a pure computation over rows its caller has already
// fetched: it resolves each category's effective limit for a month,
// sums the month's expenses, applies the carry-in from the previous
// month and produces the rollover snapshot to persist when the month
// is closed. It performs no I/O and holds no state.
package budget

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RolloverPolicy controls what happens to a category's unused balance
// when a month is closed.
type RolloverPolicy string

const (
	// RolloverNone discards the remainder.
	RolloverNone RolloverPolicy = "none"
	// RolloverSameCategory carries a positive remainder into the same
	// category's next month.
	RolloverSameCategory RolloverPolicy = "same_category"
	// RolloverToReserve reports a positive remainder to the caller as
	// reserve savings. It does not seed any category's carry-in.
	RolloverToReserve RolloverPolicy = "to_reserve"
)

// Valid reports whether the policy is one of the known values.
func (p RolloverPolicy) Valid() bool {
	return p == RolloverNone || p == RolloverSameCategory || p == RolloverToReserve
}

// Category is the engine's view of a budget category.
type Category struct {
	ID             uuid.UUID
	Name           string
	Limit          Limit
	RolloverPolicy RolloverPolicy
	// CarryIn is the previous month's rollover amount. Zero for the
	// first month or a category created mid-month.
	CarryIn decimal.Decimal
}

// IncomeAmount is the income recorded for one source in the month.
// SourceID is uuid.Nil for income not attributed to a source.
type IncomeAmount struct {
	SourceID uuid.UUID
	Amount   decimal.Decimal
}

// Expense is a single expense dated within the month.
type Expense struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// Input is everything the engine needs for one owner and one month.
type Input struct {
	Month      types.Month
	Currency   string                     // display currency
	Rates      map[string]decimal.Decimal // display currency per unit of foreign currency
	Categories []Category
	Income     []IncomeAmount
	Expenses   []Expense
}

// CategoryMonth is the computed state of one category for the month.
type CategoryMonth struct {
	CategoryID     uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category
	Name           string          `json:"name" example:"Groceries"`                                  // Name of the category
	EffectiveLimit decimal.Decimal `json:"effectiveLimit" example:"15000"`                            // The category's spending cap for this month
	CarryIn        decimal.Decimal `json:"carryIn" example:"800"`                                     // Unused balance carried over from the previous month
	Spent          decimal.Decimal `json:"spent" example:"16000"`                                     // Sum of the month's expenses
	Remaining      decimal.Decimal `json:"remaining" example:"-200"`                                  // effectiveLimit + carryIn - spent
	Overspent      bool            `json:"overspent" example:"true"`                                  // Whether the remaining balance is negative

	policy RolloverPolicy
}

// Warning reports a category whose configuration could not be applied.
// The category is still computed, with a zero or unconverted limit.
type Warning struct {
	CategoryID uuid.UUID `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the affected category
	Category   string    `json:"category" example:"Groceries"`                              // Name of the affected category
	Message    string    `json:"message" example:"negative percentage"`                     // What is wrong with the configuration
}

// Result is the computed budget for one owner and one month.
type Result struct {
	Month      types.Month     `json:"month" example:"2026-03"`
	Currency   string          `json:"currency" example:"EUR"` // Currency all amounts are expressed in
	Categories []CategoryMonth `json:"categories"`
	Warnings   []Warning       `json:"warnings"`
}

// Rollover is the per-category snapshot to persist when a month is
// closed. Writing it again for the same category and month must
// overwrite, never duplicate.
type Rollover struct {
	CategoryID     uuid.UUID
	Month          types.Month
	LimitAmount    decimal.Decimal
	SpentAmount    decimal.Decimal
	RolloverAmount decimal.Decimal
}

// Compute calculates the month's budget.
//
// Every monetary output is rounded to two decimal places, half up.
// Misconfigured categories degrade to a zero effective limit and a
// warning so that one bad row never blocks the rest of the budget.
func Compute(in Input) Result {
	totalIncome := decimal.Zero
	incomeBySource := make(map[uuid.UUID]decimal.Decimal, len(in.Income))
	for _, income := range in.Income {
		totalIncome = totalIncome.Add(income.Amount)
		incomeBySource[income.SourceID] = incomeBySource[income.SourceID].Add(income.Amount)
	}

	spentByCategory := make(map[uuid.UUID]decimal.Decimal, len(in.Categories))
	for _, expense := range in.Expenses {
		spentByCategory[expense.CategoryID] = spentByCategory[expense.CategoryID].Add(expense.Amount)
	}

	result := Result{
		Month:      in.Month,
		Currency:   in.Currency,
		Categories: make([]CategoryMonth, 0, len(in.Categories)),
		Warnings:   make([]Warning, 0),
	}

	for _, category := range in.Categories {
		limit, warnings := effectiveLimit(category, totalIncome, incomeBySource, in)
		result.Warnings = append(result.Warnings, warnings...)

		limit = limit.Round(2)
		spent := spentByCategory[category.ID].Round(2)
		carryIn := category.CarryIn.Round(2)
		remaining := limit.Add(carryIn).Sub(spent)

		result.Categories = append(result.Categories, CategoryMonth{
			CategoryID:     category.ID,
			Name:           category.Name,
			EffectiveLimit: limit,
			CarryIn:        carryIn,
			Spent:          spent,
			Remaining:      remaining,
			Overspent:      remaining.IsNegative(),
			policy:         category.RolloverPolicy,
		})
	}

	return result
}

// effectiveLimit resolves a category's limit configuration against the
// month's income. It never fails: configuration problems come back as
// warnings with a usable (usually zero) limit.
func effectiveLimit(category Category, totalIncome decimal.Decimal, incomeBySource map[uuid.UUID]decimal.Decimal, in Input) (decimal.Decimal, []Warning) {
	warn := func(message string) []Warning {
		return []Warning{{CategoryID: category.ID, Category: category.Name, Message: message}}
	}

	switch limit := category.Limit.(type) {
	case FixedLimit:
		if limit.Amount.IsNegative() {
			return decimal.Zero, warn("fixed limit amount is negative")
		}

		if limit.Currency == "" || limit.Currency == in.Currency {
			return limit.Amount, nil
		}

		rate, ok := in.Rates[limit.Currency]
		if !ok || !rate.IsPositive() {
			return limit.Amount, warn(fmt.Sprintf("no exchange rate for %s, amount is unconverted", limit.Currency))
		}

		return limit.Amount.Mul(rate), nil

	case PercentLimit:
		if limit.Percentage.IsNegative() {
			return decimal.Zero, warn("percentage is negative")
		}

		// No income recorded resolves to a zero limit, not an error
		return percentOf(totalIncome, limit.Percentage), nil

	case MultiSourceLimit:
		if len(limit.Rules) == 0 {
			return decimal.Zero, warn("multi-source category has no source rules")
		}

		sum := decimal.Zero
		for _, rule := range limit.Rules {
			if rule.Percentage.IsNegative() {
				return decimal.Zero, warn("source rule percentage is negative")
			}

			// Sources with no income this month contribute zero
			sum = sum.Add(percentOf(incomeBySource[rule.SourceID], rule.Percentage))
		}

		return sum, nil

	case nil:
		return decimal.Zero, warn("limit configuration could not be resolved")

	default:
		return decimal.Zero, warn("unknown limit type")
	}
}

func percentOf(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Div(decimal.NewFromInt(100))
}

// Rollovers returns the snapshot rows to persist when the month is
// closed. A negative remainder is never carried forward: overspend is
// visible in the month it happened, but the next month starts from the
// configured limit alone.
func (r Result) Rollovers() []Rollover {
	rollovers := make([]Rollover, 0, len(r.Categories))

	for _, category := range r.Categories {
		amount := decimal.Zero
		if category.policy == RolloverSameCategory && category.Remaining.IsPositive() {
			amount = category.Remaining
		}

		rollovers = append(rollovers, Rollover{
			CategoryID:     category.CategoryID,
			Month:          r.Month,
			LimitAmount:    category.EffectiveLimit,
			SpentAmount:    category.Spent,
			RolloverAmount: amount,
		})
	}

	return rollovers
}

// ToReserve returns the sum of positive remainders of categories with
// the to_reserve policy.
func (r Result) ToReserve() decimal.Decimal {
	sum := decimal.Zero

	for _, category := range r.Categories {
		if category.policy == RolloverToReserve && category.Remaining.IsPositive() {
			sum = sum.Add(category.Remaining)
		}
	}

	return sum
}
