package v1

import (
	"net/http"

	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterExchangeRateRoutes registers the routes for exchange rates
// with the RouterGroup that is passed.
func RegisterExchangeRateRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExchangeRateList)
		r.GET("", GetExchangeRates)
		r.POST("", CreateExchangeRates)
	}

	// Exchange rate with ID
	{
		r.OPTIONS("/:id", OptionsExchangeRateDetail)
		r.GET("/:id", GetExchangeRate)
		r.PATCH("/:id", UpdateExchangeRate)
		r.DELETE("/:id", DeleteExchangeRate)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExchangeRates
// @Success		204
// @Router			/v1/exchange-rates [options]
func OptionsExchangeRateList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			ExchangeRates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/exchange-rates/{id} [options]
func OptionsExchangeRateDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.ExchangeRate{})
}

// @Summary		Create exchange rates
// @Description	Creates new exchange rates
// @Tags			ExchangeRates
// @Produce		json
// @Success		201				{object}	ExchangeRateCreateResponse
// @Failure		400				{object}	ExchangeRateCreateResponse
// @Failure		500				{object}	ExchangeRateCreateResponse
// @Param			exchangeRates	body		[]ExchangeRateEditable	true	"Exchange rates"
// @Router			/v1/exchange-rates [post]
func CreateExchangeRates(c *gin.Context) {
	var editables []ExchangeRateEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExchangeRateCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExchangeRateCreateResponse{}

	for _, editable := range editables {
		exchangeRate := editable.model()

		err = models.DB.Create(&exchangeRate).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExchangeRate(c, exchangeRate)
		r.Data = append(r.Data, ExchangeRateResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get exchange rates
// @Description	Returns a list of exchange rates
// @Tags			ExchangeRates
// @Produce		json
// @Success		200	{object}	ExchangeRateListResponse
// @Failure		400	{object}	ExchangeRateListResponse
// @Failure		500	{object}	ExchangeRateListResponse
// @Router			/v1/exchange-rates [get]
// @Param			base	query	string	false	"Filter by source currency"
// @Param			quote	query	string	false	"Filter by target currency"
// @Param			offset	query	uint	false	"The offset of the first exchange rate returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of exchange rates to return. Defaults to 50."
func GetExchangeRates(c *gin.Context) {
	var filter ExchangeRateQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExchangeRateListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("base ASC, quote ASC").
		Where(&filterModel, queryFields...)

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 exchange rates and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var exchangeRates []models.ExchangeRate
	err = q.Find(&exchangeRates).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExchangeRateListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExchangeRateListResponse{
			Error: &e,
		})
		return
	}

	data := make([]ExchangeRate, 0, len(exchangeRates))
	for _, exchangeRate := range exchangeRates {
		data = append(data, newExchangeRate(c, exchangeRate))
	}

	c.JSON(http.StatusOK, ExchangeRateListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get exchange rate
// @Description	Returns a specific exchange rate
// @Tags			ExchangeRates
// @Produce		json
// @Success		200	{object}	ExchangeRateResponse
// @Failure		400	{object}	ExchangeRateResponse
// @Failure		404	{object}	ExchangeRateResponse
// @Failure		500	{object}	ExchangeRateResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/exchange-rates/{id} [get]
func GetExchangeRate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExchangeRateResponse{
			Error: &s,
		})
		return
	}

	var exchangeRate models.ExchangeRate
	err = models.DB.First(&exchangeRate, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExchangeRateResponse{
			Error: &s,
		})
		return
	}

	data := newExchangeRate(c, exchangeRate)
	c.JSON(http.StatusOK, ExchangeRateResponse{Data: &data})
}

// @Summary		Update exchange rate
// @Description	Update an existing exchange rate. Only values to be updated need to be specified.
// @Tags			ExchangeRates
// @Accept			json
// @Produce		json
// @Success		200				{object}	ExchangeRateResponse
// @Failure		400				{object}	ExchangeRateResponse
// @Failure		404				{object}	ExchangeRateResponse
// @Failure		500				{object}	ExchangeRateResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			exchangeRate	body		ExchangeRateEditable	true	"Exchange rate"
// @Router			/v1/exchange-rates/{id} [patch]
func UpdateExchangeRate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExchangeRateResponse{
			Error: &s,
		})
		return
	}

	var exchangeRate models.ExchangeRate
	err = models.DB.First(&exchangeRate, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExchangeRateResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExchangeRateEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExchangeRateResponse{
			Error: &s,
		})
		return
	}

	var data ExchangeRateEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExchangeRateResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&exchangeRate).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExchangeRateResponse{
			Error: &s,
		})
		return
	}

	r := newExchangeRate(c, exchangeRate)
	c.JSON(http.StatusOK, ExchangeRateResponse{Data: &r})
}

// @Summary		Delete exchange rate
// @Description	Deletes an exchange rate
// @Tags			ExchangeRates
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/exchange-rates/{id} [delete]
func DeleteExchangeRate(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var exchangeRate models.ExchangeRate
	err = models.DB.First(&exchangeRate, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&exchangeRate).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
