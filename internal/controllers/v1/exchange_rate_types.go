package v1

import (
	"fmt"

	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ExchangeRateEditable represents all exchange rate parameters
type ExchangeRateEditable struct {
	Base  string          `json:"base" example:"USD" default:""`  // ISO 4217 code of the source currency
	Quote string          `json:"quote" example:"EUR" default:""` // ISO 4217 code of the target currency
	Rate  decimal.Decimal `json:"rate" example:"0.9"`             // One unit of base is this many units of quote
}

func (editable ExchangeRateEditable) model() models.ExchangeRate {
	return models.ExchangeRate{
		Base:  editable.Base,
		Quote: editable.Quote,
		Rate:  editable.Rate,
	}
}

type ExchangeRateLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/exchange-rates/5b95e1a9-522d-4a36-9441-75a27bf8752a"` // The exchange rate itself
}

type ExchangeRate struct {
	models.DefaultModel
	ExchangeRateEditable
	Links ExchangeRateLinks `json:"links"`
}

func newExchangeRate(c *gin.Context, model models.ExchangeRate) ExchangeRate {
	url := c.GetString(string(models.DBContextURL))

	return ExchangeRate{
		DefaultModel: model.DefaultModel,
		ExchangeRateEditable: ExchangeRateEditable{
			Base:  model.Base,
			Quote: model.Quote,
			Rate:  model.Rate,
		},
		Links: ExchangeRateLinks{
			Self: fmt.Sprintf("%s/v1/exchange-rates/%s", url, model.ID),
		},
	}
}

type ExchangeRateListResponse struct {
	Data       []ExchangeRate `json:"data"`                                                          // List of exchange rates
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type ExchangeRateCreateResponse struct {
	Data  []ExchangeRateResponse `json:"data"`                                                          // List of the created exchange rates or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *ExchangeRateCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, ExchangeRateResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExchangeRateResponse struct {
	Data  *ExchangeRate `json:"data"`                                                          // Data for the exchange rate
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ExchangeRateQueryFilter struct {
	Base   string `form:"base"`                       // By source currency
	Quote  string `form:"quote"`                      // By target currency
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first exchange rate returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of exchange rates to return. Defaults to 50.
}

func (f ExchangeRateQueryFilter) model() (models.ExchangeRate, error) {
	return models.ExchangeRate{
		Base:  f.Base,
		Quote: f.Quote,
	}, nil
}
