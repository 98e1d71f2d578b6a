package models

import "golang.org/x/text/currency"

// DefaultCurrency is used when a resource does not set its own currency.
const DefaultCurrency = "EUR"

// validCurrency reports whether code is a well-formed ISO 4217 code.
func validCurrency(code string) bool {
	_, err := currency.ParseISO(code)
	return err == nil
}
