package v1

import (
	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
//
// Note: This function only works for resources with an ID, not for calculated endpoints (like /months)
func resourceOptionsDetail[R models.User | models.SharedBudget | models.IncomeSource | models.Income | models.Category | models.Expense | models.ExchangeRate](c *gin.Context, resource R) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&resource, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
