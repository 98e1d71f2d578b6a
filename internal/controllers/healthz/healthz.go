// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/hearthbudget/backend/internal/httputil"
	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the healthz routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// Get returns the application health
//
//	@Summary		Get health
//	@Description	Returns the application health and, if not healthy, an error
//	@Tags			General
//	@Produce		json
//	@Success		204
//	@Failure		500
//	@Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
