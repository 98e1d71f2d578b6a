package v1

import (
	"errors"
	"net/http"

	"github.com/hearthbudget/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, errActingUserForbidden) || errors.Is(err, errActingUserReadForbidden) {
		return http.StatusForbidden
	}

	return http.StatusBadRequest
}

// Month endpoint errors
var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
	errOwnerNotSetInQuery = errors.New("exactly one of the user and sharedBudget query parameters must be set")
)

// Shared budget access errors
var (
	errActingUserRequired      = errors.New("the actingUser query parameter must be set for operations on shared budget resources")
	errActingUserForbidden     = errors.New("the acting user may not modify resources of this shared budget")
	errActingUserReadForbidden = errors.New("the acting user is not a member of this shared budget")
)
