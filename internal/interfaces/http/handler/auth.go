package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/repairshop/backend/internal/application/identity"
	"github.com/repairshop/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	authService *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LogoutResponse represents the logout response
// @Description Logout confirmation
type LogoutResponse struct {
	Message string `json:"message" example:"Logged out"`
}

// Register godoc
// @ID           registerCompany
// @Summary      Register a company
// @Description  Create a company and its administrator, then sign the administrator in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.RegisterRequest true "Company and administrator"
// @Success      201 {object} APIResponse[identityapp.TokenResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req identityapp.RegisterRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	token, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, token)
}

// Login godoc
// @ID           login
// @Summary      User login
// @Description  Authenticate with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body identityapp.LoginRequest true "Login credentials"
// @Success      200 {object} APIResponse[identityapp.TokenResponse]
// @Failure      400 {object} dto.ErrorResponse
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if !middleware.BindJSON(c, &req) {
		return
	}

	token, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, token)
}

// Logout godoc
// @ID           logout
// @Summary      User logout
// @Description  Revoke the current token until it expires
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[LogoutResponse]
// @Failure      401 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetJWTClaims(c)
	if claims == nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	input := identityapp.LogoutInput{
		TokenID: claims.ID,
		TTL:     claims.RemainingTTL(),
	}
	if err := h.authService.Logout(c.Request.Context(), input); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, LogoutResponse{Message: "Logged out"})
}

// Me godoc
// @ID           getCurrentUser
// @Summary      Get current user
// @Description  Get the profile of the signed-in user
// @Tags         auth
// @Produce      json
// @Success      200 {object} APIResponse[identityapp.UserResponse]
// @Failure      401 {object} dto.ErrorResponse
// @Failure      404 {object} dto.ErrorResponse
// @Failure      500 {object} dto.ErrorResponse
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	tc, ok := h.tenant(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(c.Request.Context(), tc)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}
