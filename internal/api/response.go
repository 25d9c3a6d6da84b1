package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mcastellanos/storefront/internal/apperr"
)

// Every response carries a success flag; errors add a message and, for
// server errors, a diagnostic string.

func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	body := gin.H{"success": false, "message": err.Error()}
	if status >= http.StatusInternalServerError {
		var e *apperr.Error
		if errors.As(err, &e) && e.Err != nil {
			body["error"] = e.Err.Error()
		}
	}
	c.JSON(status, body)
}

func abortError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
}

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.InvalidArgument:
		return http.StatusBadRequest
	case apperr.Unauthorized:
		return http.StatusUnauthorized
	case apperr.Forbidden:
		return http.StatusForbidden
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
