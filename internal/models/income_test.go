package models_test

import (
	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestIncomeUniquePerSourceAndMonth() {
	user := suite.createTestUser(models.User{})
	source := suite.createTestIncomeSource(models.IncomeSource{UserID: user.ID, Name: "Salary"})

	income := models.Income{
		UserID:         user.ID,
		IncomeSourceID: source.ID,
		Month:          types.NewMonth(2026, 3),
		Amount:         decimal.NewFromInt(3000),
	}
	suite.Require().NoError(models.DB.Create(&income).Error)

	// A second record for the same user, source and month is rejected
	duplicate := models.Income{
		UserID:         user.ID,
		IncomeSourceID: source.ID,
		Month:          types.NewMonth(2026, 3),
		Amount:         decimal.NewFromInt(100),
	}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrIncomeMonthNotUnique)

	// Another month is fine
	nextMonth := models.Income{
		UserID:         user.ID,
		IncomeSourceID: source.ID,
		Month:          types.NewMonth(2026, 4),
		Amount:         decimal.NewFromInt(3000),
	}
	suite.Assert().NoError(models.DB.Create(&nextMonth).Error)
}

func (suite *TestSuiteStandard) TestIncomeLumpSumUnique() {
	user := suite.createTestUser(models.User{})

	lumpSum := models.Income{
		UserID: user.ID,
		Month:  types.NewMonth(2026, 3),
		Amount: decimal.NewFromInt(50000),
	}
	suite.Require().NoError(models.DB.Create(&lumpSum).Error)

	duplicate := models.Income{
		UserID: user.ID,
		Month:  types.NewMonth(2026, 3),
		Amount: decimal.NewFromInt(1),
	}
	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrIncomeMonthNotUnique)
}

func (suite *TestSuiteStandard) TestIncomeSourceMustBelongToUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	source := suite.createTestIncomeSource(models.IncomeSource{UserID: other.ID})

	err := models.DB.Create(&models.Income{
		UserID:         user.ID,
		IncomeSourceID: source.ID,
		Month:          types.NewMonth(2026, 3),
		Amount:         decimal.NewFromInt(100),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrIncomeSourceWrongUser)

	err = models.DB.Create(&models.Income{
		UserID:         user.ID,
		IncomeSourceID: uuid.New(),
		Month:          types.NewMonth(2026, 3),
		Amount:         decimal.NewFromInt(100),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrIncomeSourceWrongUser)
}

func (suite *TestSuiteStandard) TestIncomeValidation() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Income{
		UserID: user.ID,
		Month:  types.NewMonth(2026, 3),
		Amount: decimal.NewFromInt(-1),
	}).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)

	err = models.DB.Create(&models.Income{
		UserID:   user.ID,
		Month:    types.NewMonth(2026, 3),
		Amount:   decimal.NewFromInt(1),
		Currency: "money",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrCurrencyInvalid)
}

func (suite *TestSuiteStandard) TestIncomeSourceNameUniquePerUser() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})

	suite.createTestIncomeSource(models.IncomeSource{UserID: user.ID, Name: "Salary"})

	err := models.DB.Create(&models.IncomeSource{UserID: user.ID, Name: "Salary"}).Error
	suite.Assert().ErrorIs(err, models.ErrIncomeSourceNameNotUnique)

	// The same name under a different user is fine
	err = models.DB.Create(&models.IncomeSource{UserID: other.ID, Name: "Salary"}).Error
	suite.Assert().NoError(err)
}
