package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kiernans/blog-top/internal/repository"
)

// UsersHandler handles user listing requests.
type UsersHandler struct {
	userRepo repository.UserRepository
}

// NewUsersHandler creates a new UsersHandler instance.
func NewUsersHandler(userRepo repository.UserRepository) *UsersHandler {
	return &UsersHandler{userRepo: userRepo}
}

// List godoc
// @Summary List users
// @Description List all users, projecting only non-sensitive fields
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.PublicUser
// @Failure 401 {object} httperr.Response
// @Router /users [get]
func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.userRepo.ListPublic(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
