package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweepscout/tracker/internal/domain"
)

// ErrorResponse represents error response
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid request"`
}

// userIDFromContext reads the authenticated user id placed by the JWT
// middleware
func userIDFromContext(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// respondError maps a usecase error onto the HTTP response. AppErrors carry
// their own status and safe message; anything else becomes a generic 500 so
// no internal detail leaks.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		appErr.Path = c.Request.URL.Path
		appErr.Method = c.Request.Method
		if requestID, exists := c.Get("request_id"); exists {
			appErr.RequestID, _ = requestID.(string)
		}
		c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr))
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
}

// respondUnauthorized is the shared 401 for requests without a valid session
func respondUnauthorized(c *gin.Context) {
	respondError(c, domain.NewUnauthorizedError(""))
}
