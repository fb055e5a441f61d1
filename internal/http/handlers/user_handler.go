package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sweepscout/tracker/internal/domain"
)

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userUseCase domain.UserUseCase
}

// NewUserHandler creates a new user handler
func NewUserHandler(userUseCase domain.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// SignInRequest represents the sign-in request body
type SignInRequest struct {
	Code string `json:"code" binding:"required" example:"4/0AX4XfWh..."`
}

// SignInResponse represents the sign-in response body
type SignInResponse struct {
	Token string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  *domain.User `json:"user"`
}

// SignIn handles the OAuth authorization-code sign-in
// @Summary Sign in
// @Description Exchange an OAuth authorization code for a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignInRequest true "Authorization code"
// @Success 200 {object} SignInResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /auth/signin [post]
func (h *UserHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, domain.NewAppError(domain.ErrCodeCodeRequired, "Authorization code is required", http.StatusBadRequest, err))
		return
	}

	token, u, err := h.userUseCase.SignIn(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SignInResponse{Token: token, User: u})
}

// GetUserInfo handles the profile read
// @Summary Get user information
// @Description Current user's profile with stored aggregate totals
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.User
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetUserInfo(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		respondUnauthorized(c)
		return
	}

	u, err := h.userUseCase.GetUserInfo(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, u)
}
