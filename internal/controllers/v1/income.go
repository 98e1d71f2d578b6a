package v1

import (
	"fmt"
	"net/http"

	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", GetIncomes)
		r.POST("", CreateIncomes)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PATCH("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Income{})
}

// @Summary		Create income
// @Description	Creates a new income record
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeCreateResponse
// @Failure		400		{object}	IncomeCreateResponse
// @Failure		500		{object}	IncomeCreateResponse
// @Param			incomes	body		[]IncomeEditable	true	"Incomes"
// @Router			/v1/incomes [post]
func CreateIncomes(c *gin.Context) {
	var editables []IncomeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := IncomeCreateResponse{}

	for _, editable := range editables {
		income := editable.model()

		err = models.DB.Create(&income).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newIncome(c, income)
		r.Data = append(r.Data, IncomeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get incomes
// @Description	Returns a list of income records
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		400	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Router			/v1/incomes [get]
// @Param			user			query	string	false	"Filter by user ID"
// @Param			incomeSource	query	string	false	"Filter by income source ID. An empty value filters for lump sums"
// @Param			month			query	string	false	"Filter by month in YYYY-MM format"
// @Param			currency		query	string	false	"Filter by currency"
// @Param			note			query	string	false	"Filter by note"
// @Param			offset			query	uint	false	"The offset of the first income returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of incomes to return. Defaults to 50."
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("month DESC").
		Where(&filterModel, queryFields...)

	month, err := filter.month()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	if !month.IsZero() {
		q = q.Where("month = ?", month)
	}

	if filter.Note != "" {
		q = q.Where("note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	} else if slices.Contains(setFields, "Note") {
		q = q.Where("note = ''")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 incomes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var incomes []models.Income
	err = q.Find(&incomes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get income
// @Description	Returns a specific income record
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Update income
// @Description	Update an existing income record. Only values to be updated need to be specified.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes/{id} [patch]
func UpdateIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	var data IncomeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&income).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	r := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &r})
}

// @Summary		Delete income
// @Description	Deletes an income record
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var income models.Income
	err = models.DB.First(&income, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&income).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
