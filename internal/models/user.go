package models

import (
	"strings"

	"gorm.io/gorm"
)

// Theme is the user's preferred UI theme.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// User represents a person using Hearth Budget.
//
// There is no authentication layer. Callers identify the acting user
// explicitly, the session handling in front of this API is not part of
// the backend.
type User struct {
	DefaultModel
	Name     string `gorm:"uniqueIndex"` // Name of the user, unique
	Note     string
	Currency string // Display currency, ISO 4217
	Theme    Theme  // Preferred UI theme
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Note = strings.TrimSpace(u.Note)

	if u.Currency == "" {
		u.Currency = DefaultCurrency
	}

	if !validCurrency(u.Currency) {
		return ErrCurrencyInvalid
	}

	if u.Theme == "" {
		u.Theme = ThemeSystem
	}

	if u.Theme != ThemeLight && u.Theme != ThemeDark && u.Theme != ThemeSystem {
		return ErrThemeInvalid
	}

	return nil
}
