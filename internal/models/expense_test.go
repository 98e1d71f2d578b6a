package models_test

import (
	"time"

	"github.com/hearthbudget/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseOwnerMustMatchCategory() {
	user := suite.createTestUser(models.User{})
	other := suite.createTestUser(models.User{})
	sharedBudget := suite.createTestSharedBudget(models.SharedBudget{})

	personal := suite.createTestCategory(models.Category{UserID: &user.ID})
	shared := suite.createTestCategory(models.Category{SharedBudgetID: &sharedBudget.ID})

	err := models.DB.Create(&models.Expense{
		Description: "Groceries",
		Date:        time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(42),
		CategoryID:  personal.ID,
		UserID:      &user.ID,
	}).Error
	suite.Assert().NoError(err)

	// Another user cannot book against a personal category
	err = models.DB.Create(&models.Expense{
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(42),
		CategoryID: personal.ID,
		UserID:     &other.ID,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrOwnerMismatch)

	// A personal expense cannot count against a shared category
	err = models.DB.Create(&models.Expense{
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(42),
		CategoryID: shared.ID,
		UserID:     &user.ID,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrOwnerMismatch)

	err = models.DB.Create(&models.Expense{
		Date:           time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:         decimal.NewFromInt(42),
		CategoryID:     shared.ID,
		SharedBudgetID: &sharedBudget.ID,
	}).Error
	suite.Assert().NoError(err)
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	err := models.DB.Create(&models.Expense{
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(-5),
		CategoryID: category.ID,
		UserID:     &user.ID,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrAmountNegative)

	err = models.DB.Create(&models.Expense{
		Date:       time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:     decimal.NewFromInt(5),
		CategoryID: category.ID,
	}).Error
	suite.Assert().ErrorIs(err, models.ErrOwnerInvalid)
}
