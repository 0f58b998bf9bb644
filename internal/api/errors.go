package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"whatsapp-studio/internal/whatsapp"
)

// graphStatus maps a Graph API failure to the status returned to callers.
// Rejections keep Meta's message so it can be shown unchanged.
func graphStatus(err error) int {
	var apiErr *whatsapp.APIError
	switch {
	case errors.As(err, &apiErr):
		if apiErr.StatusCode >= http.StatusInternalServerError {
			return http.StatusBadGateway
		}
		return http.StatusUnprocessableEntity
	case errors.Is(err, whatsapp.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func graphError(c *gin.Context, err error) {
	c.JSON(graphStatus(err), gin.H{"error": err.Error()})
}
