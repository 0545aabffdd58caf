package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiernans/blog-top/internal/middleware"
	"github.com/kiernans/blog-top/internal/service"
)

// AuthHandler handles signup, login and logout requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup godoc
// @Summary Create a new user
// @Description Validate the signup payload, hash the password and persist the user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body service.SignupRequest true "Signup payload"
// @Success 201 {object} models.User
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /create [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	// The password hash is excluded from the response by the model's
	// json tag.
	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Authenticate a user
// @Description Verify credentials and issue a signed bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 201 {object} service.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "Invalid request body.")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Logout godoc
// @Summary Log out
// @Description Revoke the presented bearer token for its remaining lifetime
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} httperr.Response
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.CurrentToken(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}
