package models_test

import (
	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/budget"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestRolloverUpsertOverwrites() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})
	month := types.NewMonth(2026, 3)

	_, err := models.UpsertRollovers(models.DB, []budget.Rollover{{
		CategoryID:     category.ID,
		Month:          month,
		LimitAmount:    decimal.NewFromInt(500),
		SpentAmount:    decimal.NewFromInt(400),
		RolloverAmount: decimal.NewFromInt(100),
	}})
	suite.Require().NoError(err)

	// Closing the month again overwrites the existing row
	_, err = models.UpsertRollovers(models.DB, []budget.Rollover{{
		CategoryID:     category.ID,
		Month:          month,
		LimitAmount:    decimal.NewFromInt(500),
		SpentAmount:    decimal.NewFromInt(450),
		RolloverAmount: decimal.NewFromInt(50),
	}})
	suite.Require().NoError(err)

	var rows []models.BudgetRollover
	suite.Require().NoError(models.DB.Where("category_id = ?", category.ID).Find(&rows).Error)
	suite.Require().Len(rows, 1, "recomputing a month must overwrite, not duplicate")
	suite.Assert().True(rows[0].RolloverAmount.Equal(decimal.NewFromInt(50)), "rollover amount is %s", rows[0].RolloverAmount)
}

func (suite *TestSuiteStandard) TestCarryIns() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})
	newCategory := suite.createTestCategory(models.Category{UserID: &user.ID})

	_, err := models.UpsertRollovers(models.DB, []budget.Rollover{{
		CategoryID:     category.ID,
		Month:          types.NewMonth(2026, 2),
		LimitAmount:    decimal.NewFromInt(500),
		SpentAmount:    decimal.NewFromInt(420),
		RolloverAmount: decimal.NewFromInt(80),
	}})
	suite.Require().NoError(err)

	carryIns, err := models.CarryIns(models.DB, []uuid.UUID{category.ID, newCategory.ID}, types.NewMonth(2026, 3))
	suite.Require().NoError(err)

	suite.Assert().True(carryIns[category.ID].Equal(decimal.NewFromInt(80)))

	// A category without a prior row has a zero carry-in
	suite.Assert().True(carryIns[newCategory.ID].IsZero())
}

func (suite *TestSuiteStandard) TestDeleteRollovers() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})
	month := types.NewMonth(2026, 3)

	_, err := models.UpsertRollovers(models.DB, []budget.Rollover{{
		CategoryID:     category.ID,
		Month:          month,
		LimitAmount:    decimal.NewFromInt(100),
		SpentAmount:    decimal.NewFromInt(10),
		RolloverAmount: decimal.NewFromInt(90),
	}})
	suite.Require().NoError(err)

	suite.Require().NoError(models.DeleteRollovers(models.DB, []uuid.UUID{category.ID}, month))

	carryIns, err := models.CarryIns(models.DB, []uuid.UUID{category.ID}, month.Next())
	suite.Require().NoError(err)
	suite.Assert().Empty(carryIns)
}

func (suite *TestSuiteStandard) TestCategoryDeletionHidesRolloverHistory() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	_, err := models.UpsertRollovers(models.DB, []budget.Rollover{{
		CategoryID:     category.ID,
		Month:          types.NewMonth(2026, 2),
		LimitAmount:    decimal.NewFromInt(500),
		SpentAmount:    decimal.NewFromInt(0),
		RolloverAmount: decimal.NewFromInt(500),
	}})
	suite.Require().NoError(err)

	// Deleting the category does not error even though history exists
	suite.Require().NoError(models.DB.Delete(&category).Error)

	// The history is no longer reachable through active categories
	var categories []models.Category
	suite.Require().NoError(models.DB.Where("user_id = ?", user.ID).Find(&categories).Error)
	suite.Assert().Empty(categories)
}
