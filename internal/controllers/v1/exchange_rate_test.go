package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/hearthbudget/backend/internal/controllers/v1"
	"github.com/hearthbudget/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestExchangeRatesCreate verifies validation on creation.
func (suite *TestSuiteStandard) TestExchangeRatesCreate() {
	tests := []struct {
		name   string
		rate   v1.ExchangeRateEditable
		status int
	}{
		{
			"Valid rate",
			v1.ExchangeRateEditable{Base: "USD", Quote: "EUR", Rate: decimal.NewFromFloat(0.9)},
			http.StatusCreated,
		},
		{
			"Invalid base currency",
			v1.ExchangeRateEditable{Base: "Stamps", Quote: "EUR", Rate: decimal.NewFromFloat(0.9)},
			http.StatusBadRequest,
		},
		{
			"Zero rate",
			v1.ExchangeRateEditable{Base: "NOK", Quote: "EUR", Rate: decimal.Zero},
			http.StatusBadRequest,
		},
		{
			"Negative rate",
			v1.ExchangeRateEditable{Base: "NOK", Quote: "EUR", Rate: decimal.NewFromInt(-1)},
			http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			createTestExchangeRate(t, tt.rate, tt.status)
		})
	}
}

// TestExchangeRatesCreateDuplicatePair verifies that currency pairs are
// unique.
func (suite *TestSuiteStandard) TestExchangeRatesCreateDuplicatePair() {
	createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "USD", Quote: "EUR", Rate: decimal.NewFromFloat(0.9)})
	createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "USD", Quote: "EUR", Rate: decimal.NewFromFloat(0.95)}, http.StatusBadRequest)

	// The inverse pair is a different pair
	createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "EUR", Quote: "USD", Rate: decimal.NewFromFloat(1.1)})
}

// TestExchangeRatesGetFilter verifies that filtering works correctly.
func (suite *TestSuiteStandard) TestExchangeRatesGetFilter() {
	_ = createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "USD", Quote: "EUR", Rate: decimal.NewFromFloat(0.9)})
	_ = createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "NOK", Quote: "EUR", Rate: decimal.NewFromFloat(0.085)})
	_ = createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "USD", Quote: "NOK", Rate: decimal.NewFromFloat(10.5)})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Base", "base=USD", 2},
		{"Quote", "quote=EUR", 2},
		{"Pair", "base=NOK&quote=EUR", 1},
		{"No match", "base=GBP", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/exchange-rates?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExchangeRateListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.len, len(response.Data))
		})
	}
}

// TestExchangeRatesUpdate verifies that exchange rates can be updated.
func (suite *TestSuiteStandard) TestExchangeRatesUpdate() {
	rate := createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "USD", Quote: "EUR", Rate: decimal.NewFromFloat(0.9)})

	r := test.Request(suite.T(), http.MethodPatch, rate.Data.Links.Self, map[string]any{
		"rate": "0.93",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.ExchangeRateResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Rate.Equal(decimal.NewFromFloat(0.93)), "rate is %s", updated.Data.Rate)
}

// TestExchangeRatesDelete verifies that exchange rates can be deleted.
func (suite *TestSuiteStandard) TestExchangeRatesDelete() {
	rate := createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "USD", Quote: "EUR", Rate: decimal.NewFromFloat(0.9)})

	r := test.Request(suite.T(), http.MethodDelete, rate.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rate.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestExchangeRatesGetSingle verifies that requests for a single
// exchange rate are handled correctly.
func (suite *TestSuiteStandard) TestExchangeRatesGetSingle() {
	rate := createTestExchangeRate(suite.T(), v1.ExchangeRateEditable{Base: "USD", Quote: "EUR", Rate: decimal.NewFromFloat(0.9)})

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing rate", rate.Data.ID.String(), http.StatusOK},
		{"No rate with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "USDEUR", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/exchange-rates/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}
