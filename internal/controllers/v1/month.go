package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hearthbudget/backend/internal/budget"
	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/hearthbudget/backend/internal/types"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RegisterMonthRoutes registers the routes for months with the
// RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsMonth)
		r.GET("", GetMonth)
		r.POST("", CloseMonth)
		r.DELETE("", ReopenMonth)
	}
}

// MonthQuery identifies the owner and month to compute.
type MonthQuery struct {
	Month          string       `form:"month" example:"2026-03"`                                        // The month in YYYY-MM format
	UserID         hb_uuid.UUID `form:"user" example:"d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`            // ID of the user. Exactly one of user and sharedBudget must be set
	SharedBudgetID hb_uuid.UUID `form:"sharedBudget" example:"a29bd04f-b63a-4b83-8597-a1ba411a814b"`    // ID of the shared budget. Exactly one of user and sharedBudget must be set
	ActingUser     hb_uuid.UUID `form:"actingUser" example:"d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`      // ID of the acting user. Required for shared budgets
}

type MonthLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/months?month=2026-03&user=d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"` // This month computation
}

// Month is the computed budget for one owner and one month.
type Month struct {
	budget.Result
	ToReserve decimal.Decimal `json:"toReserve" example:"1200"` // Sum of unused balances flowing into the reserve on close
	Links     MonthLinks      `json:"links"`
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                                          // Data for the month
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func newMonth(c *gin.Context, query MonthQuery, result budget.Result) Month {
	url := c.GetString(string(models.DBContextURL))

	owner := fmt.Sprintf("user=%s", query.UserID)
	if query.SharedBudgetID != hb_uuid.Nil {
		owner = fmt.Sprintf("sharedBudget=%s", query.SharedBudgetID)
	}

	return Month{
		Result:    result,
		ToReserve: result.ToReserve(),
		Links: MonthLinks{
			Self: fmt.Sprintf("%s/v1/months?month=%s&%s", url, result.Month, owner),
		},
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonth(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Get month
// @Description	Computes the budget for the specified owner and month
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		403	{object}	MonthResponse
// @Failure		404	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Param			month			query	string	true	"The month in YYYY-MM format"
// @Param			user			query	string	false	"ID of the user. Exactly one of user and sharedBudget must be set"
// @Param			sharedBudget	query	string	false	"ID of the shared budget. Exactly one of user and sharedBudget must be set"
// @Param			actingUser		query	string	false	"ID of the acting user. Required for shared budgets"
// @Router			/v1/months [get]
func GetMonth(c *gin.Context) {
	query, result, err := computeMonth(c, requireView)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(c, query, result)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Close month
// @Description	Computes the budget for the specified owner and month and persists the rollover snapshot. Closing the same month again overwrites the snapshot.
// @Tags			Months
// @Produce		json
// @Success		201	{object}	MonthResponse
// @Failure		400	{object}	MonthResponse
// @Failure		403	{object}	MonthResponse
// @Failure		404	{object}	MonthResponse
// @Failure		500	{object}	MonthResponse
// @Param			month			query	string	true	"The month in YYYY-MM format"
// @Param			user			query	string	false	"ID of the user. Exactly one of user and sharedBudget must be set"
// @Param			sharedBudget	query	string	false	"ID of the shared budget. Exactly one of user and sharedBudget must be set"
// @Param			actingUser		query	string	false	"ID of the acting user. Required for shared budgets"
// @Router			/v1/months [post]
func CloseMonth(c *gin.Context) {
	query, result, err := computeMonth(c, requireEdit)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	_, err = models.UpsertRollovers(models.DB, result.Rollovers())
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(c, query, result)
	c.JSON(http.StatusCreated, MonthResponse{Data: &data})
}

// @Summary		Reopen month
// @Description	Deletes the rollover snapshot for the specified owner and month, reopening it
// @Tags			Months
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			month			query	string	true	"The month in YYYY-MM format"
// @Param			user			query	string	false	"ID of the user. Exactly one of user and sharedBudget must be set"
// @Param			sharedBudget	query	string	false	"ID of the shared budget. Exactly one of user and sharedBudget must be set"
// @Param			actingUser		query	string	false	"ID of the acting user. Required for shared budgets"
// @Router			/v1/months [delete]
func ReopenMonth(c *gin.Context) {
	query, month, err := bindMonthQuery(c)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var categories []models.Category
	if query.UserID != hb_uuid.Nil {
		var user models.User
		err = models.DB.First(&user, query.UserID.UUID).Error
		if err == nil {
			err = models.DB.Where("user_id = ?", user.ID).Find(&categories).Error
		}
	} else {
		var sharedBudget models.SharedBudget
		err = models.DB.First(&sharedBudget, query.SharedBudgetID.UUID).Error
		if err == nil {
			err = requireEdit(c, sharedBudget.ID)
		}
		if err == nil {
			err = models.DB.Where("shared_budget_id = ?", sharedBudget.ID).Find(&categories).Error
		}
	}
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	categoryIDs := make([]uuid.UUID, 0, len(categories))
	for _, category := range categories {
		categoryIDs = append(categoryIDs, category.ID)
	}

	err = models.DeleteRollovers(models.DB, categoryIDs, month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// bindMonthQuery binds and validates the owner and month parameters.
func bindMonthQuery(c *gin.Context) (MonthQuery, types.Month, error) {
	var query MonthQuery
	err := c.Bind(&query)
	if err != nil {
		return MonthQuery{}, types.Month{}, err
	}

	if query.Month == "" {
		return MonthQuery{}, types.Month{}, errMonthNotSetInQuery
	}

	month, err := types.ParseMonth(query.Month)
	if err != nil {
		return MonthQuery{}, types.Month{}, err
	}

	if (query.UserID == hb_uuid.Nil) == (query.SharedBudgetID == hb_uuid.Nil) {
		return MonthQuery{}, types.Month{}, errOwnerNotSetInQuery
	}

	return query, month, nil
}

// computeMonth fetches everything the owner recorded for the month and
// runs the allocation engine. The gate is applied for shared budgets
// before anything is fetched.
func computeMonth(c *gin.Context, gate func(*gin.Context, uuid.UUID) error) (MonthQuery, budget.Result, error) {
	query, month, err := bindMonthQuery(c)
	if err != nil {
		return MonthQuery{}, budget.Result{}, err
	}

	var currency string
	var categories []models.Category
	var incomes []models.Income
	var expenses []models.Expense

	first := time.Time(month)
	next := time.Time(month.Next())

	if query.UserID != hb_uuid.Nil {
		var user models.User
		err = models.DB.First(&user, query.UserID.UUID).Error
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}
		currency = user.Currency

		err = models.DB.
			Where("user_id = ?", user.ID).
			Where("archived = ?", false).
			Order("name ASC").
			Find(&categories).Error
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}

		err = models.DB.
			Where("user_id = ?", user.ID).
			Where("month = ?", month).
			Find(&incomes).Error
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}

		err = models.DB.
			Where("user_id = ?", user.ID).
			Where("date >= date(?)", first).
			Where("date < date(?)", next).
			Find(&expenses).Error
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}
	} else {
		var sharedBudget models.SharedBudget
		err = models.DB.First(&sharedBudget, query.SharedBudgetID.UUID).Error
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}
		currency = sharedBudget.Currency

		err = gate(c, sharedBudget.ID)
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}

		err = models.DB.
			Where("shared_budget_id = ?", sharedBudget.ID).
			Where("archived = ?", false).
			Order("name ASC").
			Find(&categories).Error
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}

		// The income of a shared budget's month is the income of all
		// its members in that month
		var members []models.SharedBudgetMember
		err = models.DB.
			Where("shared_budget_id = ?", sharedBudget.ID).
			Find(&members).Error
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}

		memberIDs := make([]uuid.UUID, 0, len(members))
		for _, member := range members {
			memberIDs = append(memberIDs, member.UserID)
		}

		if len(memberIDs) > 0 {
			err = models.DB.
				Where("user_id IN ?", memberIDs).
				Where("month = ?", month).
				Find(&incomes).Error
			if err != nil {
				return MonthQuery{}, budget.Result{}, err
			}
		}

		err = models.DB.
			Where("shared_budget_id = ?", sharedBudget.ID).
			Where("date >= date(?)", first).
			Where("date < date(?)", next).
			Find(&expenses).Error
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}
	}

	rates, err := models.RatesInto(models.DB, currency)
	if err != nil {
		return MonthQuery{}, budget.Result{}, err
	}

	categoryIDs := make([]uuid.UUID, 0, len(categories))
	for _, category := range categories {
		categoryIDs = append(categoryIDs, category.ID)
	}

	carryIns, err := models.CarryIns(models.DB, categoryIDs, month)
	if err != nil {
		return MonthQuery{}, budget.Result{}, err
	}

	input := budget.Input{
		Month:      month,
		Currency:   currency,
		Rates:      rates,
		Categories: make([]budget.Category, 0, len(categories)),
		Income:     make([]budget.IncomeAmount, 0, len(incomes)),
		Expenses:   make([]budget.Expense, 0, len(expenses)),
	}

	for _, category := range categories {
		limit, err := category.LimitSpec(models.DB)
		if err != nil {
			return MonthQuery{}, budget.Result{}, err
		}

		input.Categories = append(input.Categories, budget.Category{
			ID:             category.ID,
			Name:           category.Name,
			Limit:          limit,
			RolloverPolicy: category.RolloverPolicy,
			CarryIn:        carryIns[category.ID],
		})
	}

	for _, income := range incomes {
		input.Income = append(input.Income, budget.IncomeAmount{
			SourceID: income.IncomeSourceID,
			Amount:   convertAmount(income.Amount, income.Currency, currency, rates),
		})
	}

	for _, expense := range expenses {
		input.Expenses = append(input.Expenses, budget.Expense{
			CategoryID: expense.CategoryID,
			Amount:     convertAmount(expense.Amount, expense.Currency, currency, rates),
		})
	}

	result := budget.Compute(input)

	for _, warning := range result.Warnings {
		log.Warn().
			Str("category", warning.Category).
			Str("categoryId", warning.CategoryID.String()).
			Str("month", month.String()).
			Msg(warning.Message)
	}

	return query, result, nil
}

// convertAmount converts an amount into the display currency. Amounts
// in a currency without an exchange rate stay unconverted, the same
// degradation the engine applies to fixed limits.
func convertAmount(amount decimal.Decimal, from, display string, rates map[string]decimal.Decimal) decimal.Decimal {
	if from == "" || from == display {
		return amount
	}

	rate, ok := rates[from]
	if !ok || !rate.IsPositive() {
		log.Warn().
			Str("currency", from).
			Msg("no exchange rate into the display currency, amount is unconverted")
		return amount
	}

	return amount.Mul(rate)
}
