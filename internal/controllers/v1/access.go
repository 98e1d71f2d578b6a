package v1

import (
	"github.com/hearthbudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actingUser reads the actingUser query parameter. Operations on shared
// budget resources require it since there is no session layer that
// could identify the caller.
func actingUser(c *gin.Context) (uuid.UUID, error) {
	param := c.Query("actingUser")
	if param == "" {
		return uuid.Nil, errActingUserRequired
	}

	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, err
	}

	return id, nil
}

// requireView verifies that the acting user is a member of the shared
// budget.
func requireView(c *gin.Context, sharedBudgetID uuid.UUID) error {
	userID, err := actingUser(c)
	if err != nil {
		return err
	}

	ok, err := models.CanView(models.DB, userID, sharedBudgetID)
	if err != nil {
		return err
	}

	if !ok {
		return errActingUserReadForbidden
	}

	return nil
}

// requireEdit verifies that the acting user may modify resources of the
// shared budget. Viewers and non-members are rejected.
func requireEdit(c *gin.Context, sharedBudgetID uuid.UUID) error {
	userID, err := actingUser(c)
	if err != nil {
		return err
	}

	ok, err := models.CanEdit(models.DB, userID, sharedBudgetID)
	if err != nil {
		return err
	}

	if !ok {
		return errActingUserForbidden
	}

	return nil
}

// requireOwner verifies that the acting user has the owner role on the
// shared budget. Membership management is owner only.
func requireOwner(c *gin.Context, sharedBudgetID uuid.UUID) error {
	userID, err := actingUser(c)
	if err != nil {
		return err
	}

	ok, err := models.IsOwner(models.DB, userID, sharedBudgetID)
	if err != nil {
		return err
	}

	if !ok {
		return errActingUserForbidden
	}

	return nil
}
