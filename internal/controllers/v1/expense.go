package v1

import (
	"net/http"
	"time"

	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Expense{})
}

// @Summary		Create expense
// @Description	Creates a new expense. Mutations on shared budget expenses require the actingUser query parameter.
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		403			{object}	ExpenseCreateResponse
// @Failure		404			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Param			actingUser	query		string				false	"ID of the acting user for shared budget expenses"
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		// Writing into a shared budget needs write permission there
		if editable.SharedBudgetID != nil {
			err = requireEdit(c, *editable.SharedBudgetID)
			if err != nil {
				status = r.appendError(err, status)
				continue
			}
		}

		expense := editable.model()

		err = models.DB.Create(&expense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			category		query	string	false	"Filter by category ID"
// @Param			user			query	string	false	"Filter by owning user ID"
// @Param			sharedBudget	query	string	false	"Filter by owning shared budget ID"
// @Param			currency		query	string	false	"Filter by currency"
// @Param			description		query	string	false	"Filter by glob pattern on the description, e.g. *groceries*"
// @Param			fromDate		query	string	false	"Expenses at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate		query	string	false	"Expenses before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			month			query	string	false	"Filter by month the expense date falls into, YYYY-MM format"
// @Param			offset			query	uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Order("date DESC, created_at DESC").
		Where(&filterModel, queryFields...)

	if !filter.FromDate.IsZero() {
		q = q.Where("expenses.date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("expenses.date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	if filter.Month != "" {
		month, err := types.ParseMonth(filter.Month)
		if err != nil {
			s := httputil.ErrInvalidMonth.Error()
			c.JSON(http.StatusBadRequest, ExpenseListResponse{
				Error: &s,
			})
			return
		}

		first := time.Time(month)
		q = q.Where("expenses.date >= date(?) AND expenses.date < date(?)", first, first.AddDate(0, 1, 0))
	}

	var expenses []models.Expense
	err = q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	// The description filter is a glob match, which SQLite cannot do,
	// so it runs over the fetched rows. Offset and limit apply to the
	// filtered list.
	if filter.Description != "" {
		matched := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if glob.Glob(filter.Description, expense.Description) {
				matched = append(matched, expense)
			}
		}
		expenses = matched
	}

	count := int64(len(expenses))

	if filter.Offset >= uint(len(expenses)) {
		expenses = []models.Expense{}
	} else {
		expenses = expenses[filter.Offset:]
	}

	// Default to 50 Expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(expenses) {
		expenses = expenses[:limit]
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Update an existing expense. Only values to be updated need to be specified. Mutations on shared budget expenses require the actingUser query parameter.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200			{object}	ExpenseResponse
// @Failure		400			{object}	ExpenseResponse
// @Failure		403			{object}	ExpenseResponse
// @Failure		404			{object}	ExpenseResponse
// @Failure		500			{object}	ExpenseResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense		body		ExpenseEditable	true	"Expense"
// @Param			actingUser	query		string			false	"ID of the acting user for shared budget expenses"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	if expense.SharedBudgetID != nil {
		err = requireEdit(c, *expense.SharedBudgetID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &s,
			})
			return
		}
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	// Moving an expense into a shared budget needs write permission there
	if data.SharedBudgetID != nil && (expense.SharedBudgetID == nil || *expense.SharedBudgetID != *data.SharedBudgetID) {
		err = requireEdit(c, *data.SharedBudgetID)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &s,
			})
			return
		}
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	r := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &r})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Mutations on shared budget expenses require the actingUser query parameter.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id			path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			actingUser	query	string	false	"ID of the acting user for shared budget expenses"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if expense.SharedBudgetID != nil {
		err = requireEdit(c, *expense.SharedBudgetID)
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	err = models.DB.Delete(&expense).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
