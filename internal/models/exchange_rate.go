package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExchangeRate converts amounts in Base into Quote: one unit of Base
// is Rate units of Quote.
//
// Rates are supplied by the operator or client. The backend never
// fetches them from anywhere.
type ExchangeRate struct {
	DefaultModel
	Base  string          `gorm:"uniqueIndex:exchange_rate_pair" example:"USD"` // ISO 4217 code of the source currency
	Quote string          `gorm:"uniqueIndex:exchange_rate_pair" example:"EUR"` // ISO 4217 code of the target currency
	Rate  decimal.Decimal `gorm:"type:DECIMAL(20,8)" example:"0.9"`
}

func (r *ExchangeRate) BeforeSave(_ *gorm.DB) error {
	if !validCurrency(r.Base) || !validCurrency(r.Quote) {
		return ErrCurrencyInvalid
	}

	if !r.Rate.IsPositive() {
		return ErrExchangeRateNotPositive
	}

	return nil
}

// RatesInto returns all rates that convert into the given display
// currency, keyed by the source currency.
func RatesInto(db *gorm.DB, quote string) (map[string]decimal.Decimal, error) {
	var rows []ExchangeRate
	err := db.Where("quote = ?", quote).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	rates := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		rates[row.Base] = row.Rate
	}

	return rates, nil
}
