package devserver

import (
	"errors"
	"net/http"

	"logistica/pkg/models"
	"logistica/pkg/roles"
	"logistica/pkg/security"

	"github.com/gin-gonic/gin"
)

type UsersHandler struct {
	Repository UserRepository
	tokens     *security.Tokens
}

func NewUsersHandler(r UserRepository, tokens *security.Tokens) *UsersHandler {
	return &UsersHandler{Repository: r, tokens: tokens}
}

func (h *UsersHandler) RegisterRoutes(router gin.IRouter) {
	users := router.Group("/users", h.tokens.JWTMiddleware())
	users.GET("", h.tokens.Authorize(roles.Operator), h.GetUserList)
	users.PATCH("/:id/toggle-status", h.tokens.Authorize(roles.Admin), h.ToggleStatus)
}

func (h *UsersHandler) GetUserList(c *gin.Context) {
	users, err := h.Repository.GetUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *UsersHandler) ToggleStatus(c *gin.Context) {
	user, err := h.Repository.ToggleStatus(models.ID(c.Param("id")))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find user", "code": "USER_NOT_FOUND"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
