// controllers/errors.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rental-backend/services"
	"rental-backend/utils"
)

// respondServiceError maps service errors onto HTTP statuses. Unknown errors
// are logged and hidden behind a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found")
	case errors.Is(err, services.ErrInvalidDateOrder),
		errors.Is(err, services.ErrInvalidComment):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrBookingConflict),
		errors.Is(err, services.ErrLikeRace):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}

// idParam parses the :id path parameter; a second return of false means the
// 400 response was already written.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// uintQuery parses an optional unsigned query parameter.
func uintQuery(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil
	}
	v := uint(n)
	return &v
}
