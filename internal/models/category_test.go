package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hearthbudget/backend/internal/budget"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestCategoryOwnerExactlyOne() {
	user := suite.createTestUser(models.User{})
	sharedBudget := suite.createTestSharedBudget(models.SharedBudget{})

	tests := []struct {
		name           string
		userID         *uuid.UUID
		sharedBudgetID *uuid.UUID
		wantErr        error
	}{
		{"user owned", &user.ID, nil, nil},
		{"shared budget owned", nil, &sharedBudget.ID, nil},
		{"no owner", nil, nil, models.ErrOwnerInvalid},
		{"both owners", &user.ID, &sharedBudget.ID, models.ErrOwnerInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&models.Category{
				Name:           uuid.NewString(),
				UserID:         tt.userID,
				SharedBudgetID: tt.sharedBudgetID,
				LimitType:      models.LimitFixed,
			}).Error

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestCategoryValidation() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Category{
		Name:      "No limit type",
		UserID:    &user.ID,
		LimitType: "weekly",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrLimitTypeInvalid)

	err = models.DB.Create(&models.Category{
		Name:           "Bad policy",
		UserID:         &user.ID,
		LimitType:      models.LimitFixed,
		RolloverPolicy: "keep",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrRolloverPolicyInvalid)

	err = models.DB.Create(&models.Category{
		Name:      "Bad currency",
		UserID:    &user.ID,
		LimitType: models.LimitFixed,
		Currency:  "EURO",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrCurrencyInvalid)
}

func (suite *TestSuiteStandard) TestCategoryRolloverPolicyDefault() {
	user := suite.createTestUser(models.User{})
	category := suite.createTestCategory(models.Category{UserID: &user.ID})

	suite.Assert().Equal(budget.RolloverSameCategory, category.RolloverPolicy)
}

func (suite *TestSuiteStandard) TestCategoryLimitSpec() {
	user := suite.createTestUser(models.User{})

	fixed := suite.createTestCategory(models.Category{
		UserID:     &user.ID,
		LimitType:  models.LimitFixed,
		LimitValue: decimal.NewFromInt(500),
		Currency:   "USD",
	})

	limit, err := fixed.LimitSpec(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Equal(budget.FixedLimit{Amount: decimal.NewFromInt(500), Currency: "USD"}, limit)

	percent := suite.createTestCategory(models.Category{
		UserID:     &user.ID,
		LimitType:  models.LimitPercent,
		LimitValue: decimal.NewFromInt(30),
	})

	limit, err = percent.LimitSpec(models.DB)
	suite.Require().NoError(err)
	suite.Assert().Equal(budget.PercentLimit{Percentage: decimal.NewFromInt(30)}, limit)

	// With source rules, the same category resolves to a multi-source limit
	source := suite.createTestIncomeSource(models.IncomeSource{UserID: user.ID})
	err = models.DB.Create(&models.CategorySourceRule{
		CategoryID:     percent.ID,
		IncomeSourceID: source.ID,
		Percentage:     decimal.NewFromInt(50),
	}).Error
	suite.Require().NoError(err)

	limit, err = percent.LimitSpec(models.DB)
	suite.Require().NoError(err)
	multiSource, ok := limit.(budget.MultiSourceLimit)
	suite.Require().True(ok, "limit is %T, expected MultiSourceLimit", limit)
	suite.Require().Len(multiSource.Rules, 1)
	suite.Assert().Equal(source.ID, multiSource.Rules[0].SourceID)
}
