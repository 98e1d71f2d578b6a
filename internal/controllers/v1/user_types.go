package v1

import (
	"fmt"

	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Name     string       `json:"name" example:"Ida" default:""`                           // Name of the user, unique
	Note     string       `json:"note" example:"Account for the kids' allowance" default:""` // Notes about the user
	Currency string       `json:"currency" example:"EUR" default:"EUR"`                    // Display currency, ISO 4217
	Theme    models.Theme `json:"theme" example:"dark" default:"system"`                   // Preferred UI theme
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name:     editable.Name,
		Note:     editable.Note,
		Currency: editable.Currency,
		Theme:    editable.Theme,
	}
}

type UserLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/users/d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`                   // The user itself
	Categories    string `json:"categories" example:"https://example.com/api/v1/categories?user=d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`   // Categories of this user
	IncomeSources string `json:"incomeSources" example:"https://example.com/api/v1/income-sources?user=d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"` // Income sources of this user
	Incomes       string `json:"incomes" example:"https://example.com/api/v1/incomes?user=d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`         // Incomes of this user
	Expenses      string `json:"expenses" example:"https://example.com/api/v1/expenses?user=d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`       // Expenses of this user
	Months        string `json:"months" example:"https://example.com/api/v1/months?user=d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"`           // Month computations for this user
}

type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:     model.Name,
			Note:     model.Note,
			Currency: model.Currency,
			Theme:    model.Theme,
		},
		Links: UserLinks{
			Self:          fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Categories:    fmt.Sprintf("%s/v1/categories?user=%s", url, model.ID),
			IncomeSources: fmt.Sprintf("%s/v1/income-sources?user=%s", url, model.ID),
			Incomes:       fmt.Sprintf("%s/v1/incomes?user=%s", url, model.ID),
			Expenses:      fmt.Sprintf("%s/v1/expenses?user=%s", url, model.ID),
			Months:        fmt.Sprintf("%s/v1/months?user=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of Users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserCreateResponse struct {
	Data  []UserResponse `json:"data"`                                                          // List of the created Users or their respective error
	Error *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (u *UserCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	u.Data = append(u.Data, UserResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // Data for the User
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserQueryFilter struct {
	Name     string `form:"name" filterField:"false"`   // By name
	Note     string `form:"note" filterField:"false"`   // By note
	Currency string `form:"currency"`                   // By display currency
	Search   string `form:"search" filterField:"false"` // By string in name or note
	Offset   uint   `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit    int    `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
}

func (f UserQueryFilter) model() (models.User, error) {
	return models.User{
		Currency: f.Currency,
	}, nil
}
