package v1

import (
	"fmt"

	"github.com/hearthbudget/backend/internal/models"
	hb_uuid "github.com/hearthbudget/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IncomeSourceEditable represents all user configurable parameters
type IncomeSourceEditable struct {
	UserID uuid.UUID `json:"userId" example:"d3c3ba1e-ad9f-4f42-af02-9f47a24a818a"` // ID of the user the source belongs to
	Name   string    `json:"name" example:"Salary" default:""`                      // Name of the income source, unique per user
	Note   string    `json:"note" example:"Day job at the bakery" default:""`       // Notes about the income source
}

func (editable IncomeSourceEditable) model() models.IncomeSource {
	return models.IncomeSource{
		UserID: editable.UserID,
		Name:   editable.Name,
		Note:   editable.Note,
	}
}

type IncomeSourceLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/income-sources/0f0c43dc-0e01-4b08-8ab9-fb085aec9720"`            // The income source itself
	Incomes string `json:"incomes" example:"https://example.com/api/v1/incomes?incomeSource=0f0c43dc-0e01-4b08-8ab9-fb085aec9720"` // Incomes from this source
}

type IncomeSource struct {
	models.DefaultModel
	IncomeSourceEditable
	Links IncomeSourceLinks `json:"links"`
}

func newIncomeSource(c *gin.Context, model models.IncomeSource) IncomeSource {
	url := c.GetString(string(models.DBContextURL))

	return IncomeSource{
		DefaultModel: model.DefaultModel,
		IncomeSourceEditable: IncomeSourceEditable{
			UserID: model.UserID,
			Name:   model.Name,
			Note:   model.Note,
		},
		Links: IncomeSourceLinks{
			Self:    fmt.Sprintf("%s/v1/income-sources/%s", url, model.ID),
			Incomes: fmt.Sprintf("%s/v1/incomes?incomeSource=%s", url, model.ID),
		},
	}
}

type IncomeSourceListResponse struct {
	Data       []IncomeSource `json:"data"`                                                          // List of income sources
	Error      *string        `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination    `json:"pagination"`                                                    // Pagination information
}

type IncomeSourceCreateResponse struct {
	Data  []IncomeSourceResponse `json:"data"`                                                          // List of the created income sources or their respective error
	Error *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (s *IncomeSourceCreateResponse) appendError(err error, currentStatus int) int {
	e := err.Error()
	s.Data = append(s.Data, IncomeSourceResponse{Error: &e})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type IncomeSourceResponse struct {
	Data  *IncomeSource `json:"data"`                                                          // Data for the income source
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type IncomeSourceQueryFilter struct {
	UserID hb_uuid.UUID `form:"user"`                       // By ID of the user
	Name   string       `form:"name" filterField:"false"`   // By name
	Note   string       `form:"note" filterField:"false"`   // By note
	Search string       `form:"search" filterField:"false"` // By string in name or note
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first income source returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of income sources to return. Defaults to 50.
}

func (f IncomeSourceQueryFilter) model() (models.IncomeSource, error) {
	return models.IncomeSource{
		UserID: f.UserID.UUID,
	}, nil
}
