package v1

import (
	"fmt"

	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	UserID         uuid.UUID       `json:"userId" example:"d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`                  // ID of the user the income belongs to
	IncomeSourceID uuid.UUID       `json:"incomeSourceId" example:"0f0c43dc-0e01-4b08-8ab9-fb085aec9720"`          // ID of the income source. The zero UUID records a lump sum
	Month          types.Month     `json:"month" example:"2026-03"`                                                // Month the income belongs to
	Amount         decimal.Decimal `json:"amount" example:"2750.00" minimum:"0.00000001" multipleOf:"0.00000001"` // Amount of the income
	Currency       string          `json:"currency" example:"EUR" default:""`                                      // Currency of the amount. Empty means the user's display currency
	Note           string          `json:"note" example:"13th salary" default:""`                                  // Notes about the income
}

func (editable IncomeEditable) model() models.Income {
	return models.Income{
		UserID:         editable.UserID,
		IncomeSourceID: editable.IncomeSourceID,
		Month:          editable.Month,
		Amount:         editable.Amount,
		Currency:       editable.Currency,
		Note:           editable.Note,
	}
}

type IncomeLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/incomes/eb6d8d68-b804-4304-9389-5e5af609ff42"` // The income itself
	User string `json:"user" example:"https://example.com/api/v1/users/d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`   // The user the income belongs to
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			UserID:         model.UserID,
			IncomeSourceID: model.IncomeSourceID,
			Month:          model.Month,
			Amount:         model.Amount,
			Currency:       model.Currency,
			Note:           model.Note,
		},
		Links: IncomeLinks{
			Self: fmt.Sprintf("%s/v1/incomes/%s", url, model.ID),
			User: fmt.Sprintf("%s/v1/users/%s", url, model.UserID),
		},
	}
}

type IncomeListResponse struct {
	Data       []Income    `json:"data"`                                                          // List of incomes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type IncomeCreateResponse struct {
	Data  []IncomeResponse `json:"data"`                                                          // List of the created incomes or their respective error
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (i *IncomeCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	i.Data = append(i.Data, IncomeResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeResponse struct {
	Data  *Income `json:"data"`                                                          // Data for the income
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeQueryFilter struct {
	UserID         hb_uuid.UUID `form:"user"`                       // By ID of the user
	IncomeSourceID hb_uuid.UUID `form:"incomeSource"`               // By ID of the income source
	Month          string       `form:"month" filterField:"false"`  // By month in YYYY-MM format
	Currency       string       `form:"currency"`                   // By currency
	Note           string       `form:"note" filterField:"false"`   // By note
	Offset         uint         `form:"offset" filterField:"false"` // The offset of the first income returned. Defaults to 0.
	Limit          int          `form:"limit" filterField:"false"`  // Maximum number of incomes to return. Defaults to 50.
}

func (f IncomeQueryFilter) model() (models.Income, error) {
	return models.Income{
		UserID:         f.UserID.UUID,
		IncomeSourceID: f.IncomeSourceID.UUID,
		Currency:       f.Currency,
	}, nil
}

// month parses the month filter. The zero Month means the filter is
// not set.
func (f IncomeQueryFilter) month() (types.Month, error) {
	if f.Month == "" {
		return types.Month{}, nil
	}

	month, err := types.ParseMonth(f.Month)
	if err != nil {
		return types.Month{}, httputil.ErrInvalidMonth
	}

	return month, nil
}
