package handler

import (
	"errors"
	"net/http"
	"time"

	"health-insurance-backend/internal/service"
	"health-insurance-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// callerIdentity builds the service identity from the claims injected by the
// auth middleware.
func callerIdentity(c *gin.Context) service.Identity {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")
	superuser, _ := c.Get("superuser")

	id := service.Identity{}
	if v, ok := userID.(uint); ok {
		id.UserID = v
	}
	if v, ok := role.(string); ok {
		id.Role = v
	}
	if v, ok := superuser.(bool); ok {
		id.IsSuperuser = v
	}
	return id
}

// handleServiceError maps the service error taxonomy onto HTTP statuses.
// Authorization failures stay distinct from missing records.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAccessDenied):
		utils.ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrValidation):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrConflict):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrDomainRule):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}

// parseDate parses a yyyy-mm-dd request field. Empty input yields nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
