package models_test

import (
	"github.com/hearthbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestUserDefaults() {
	user := suite.createTestUser(models.User{Name: "Frida"})

	suite.Assert().Equal(models.DefaultCurrency, user.Currency)
	suite.Assert().Equal(models.ThemeSystem, user.Theme)
}

func (suite *TestSuiteStandard) TestUserValidation() {
	err := models.DB.Create(&models.User{Name: "Bad currency", Currency: "GULDEN"}).Error
	suite.Assert().ErrorIs(err, models.ErrCurrencyInvalid)

	err = models.DB.Create(&models.User{Name: "Bad theme", Theme: "neon"}).Error
	suite.Assert().ErrorIs(err, models.ErrThemeInvalid)
}

func (suite *TestSuiteStandard) TestUserNameUnique() {
	suite.createTestUser(models.User{Name: "Frida"})

	err := models.DB.Create(&models.User{Name: "Frida"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserNameNotUnique)
}

func (suite *TestSuiteStandard) TestExchangeRateValidation() {
	err := models.DB.Create(&models.ExchangeRate{Base: "USD", Quote: "EUR", Rate: decimal.NewFromInt(0)}).Error
	suite.Assert().ErrorIs(err, models.ErrExchangeRateNotPositive)

	err = models.DB.Create(&models.ExchangeRate{Base: "doubloons", Quote: "EUR", Rate: decimal.NewFromInt(1)}).Error
	suite.Assert().ErrorIs(err, models.ErrCurrencyInvalid)
}
