package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Uniqueness violations, mapped from driver errors in the create
	// and update callbacks.
	ErrUserNameNotUnique         = errors.New("the user name is already in use")
	ErrIncomeSourceNameNotUnique = errors.New("the income source name is already in use for this user")
	ErrIncomeMonthNotUnique      = errors.New("income for this user, source and month is already recorded")
	ErrExchangeRatePairNotUnique = errors.New("an exchange rate for this currency pair already exists")
	ErrMembershipNotUnique       = errors.New("the user is already a member of this shared budget")

	// Validation errors raised in BeforeSave hooks.
	ErrOwnerInvalid            = errors.New("the resource must belong to either a user or a shared budget, not both and not neither")
	ErrOwnerMismatch           = errors.New("the expense owner does not match the category owner")
	ErrCurrencyInvalid         = errors.New("the currency must be a valid ISO 4217 code")
	ErrAmountNegative          = errors.New("the amount must not be negative")
	ErrLimitTypeInvalid        = errors.New("the limit type must be fixed or percent")
	ErrRolloverPolicyInvalid   = errors.New("the rollover policy must be none, same_category or to_reserve")
	ErrThemeInvalid            = errors.New("the theme must be light, dark or system")
	ErrRoleInvalid             = errors.New("the role must be owner, member or viewer")
	ErrSourceRulesOnFixed      = errors.New("source rules can only be set on percent categories")
	ErrIncomeSourceWrongUser   = errors.New("the income source belongs to a different user")
	ErrExchangeRateNotPositive = errors.New("the exchange rate must be positive")
)
