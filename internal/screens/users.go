package screens

import (
	"context"
	"fmt"
	"sync"

	"logistica/internal/alert"
	"logistica/internal/api"
	"logistica/pkg/models"

	"go.uber.org/zap"
)

type UsersAPI interface {
	ListUsers(ctx context.Context) ([]models.User, *api.Response, error)
	ToggleUserStatus(ctx context.Context, id models.ID) (*api.Response, error)
}

type UserListController struct {
	api    UsersAPI
	nav    Navigator
	alerts *alert.Gateway
	log    *zap.Logger

	mu    sync.Mutex
	users []models.User
}

func NewUserListController(a UsersAPI, nav Navigator, alerts *alert.Gateway, log *zap.Logger) *UserListController {
	return &UserListController{api: a, nav: nav, alerts: alerts, log: log}
}

func (c *UserListController) Load(ctx context.Context) ([]models.User, error) {
	users, _, err := c.api.ListUsers(ctx)
	if err != nil {
		c.log.Error("Error loading users", zap.Error(err))
		c.alerts.NotifyError("Não foi possível carregar os usuários.")
		return nil, err
	}

	c.mu.Lock()
	c.users = users
	c.mu.Unlock()

	return users, nil
}

func (c *UserListController) Users() []models.User {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]models.User(nil), c.users...)
}

// Toggle flips the active flag on the backend, then in the local list. The
// list is not fetched again.
func (c *UserListController) Toggle(ctx context.Context, id models.ID) (models.User, error) {
	if _, err := c.api.ToggleUserStatus(ctx, id); err != nil {
		c.log.Error("Error toggling user status", zap.String("user_id", id.String()), zap.Error(err))
		c.alerts.NotifyError("Não foi possível alterar o status do usuário")
		return models.User{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i, u := range c.users {
		if u.ID == id {
			c.users[i] = u.Toggled()
			return c.users[i], nil
		}
	}

	return models.User{}, fmt.Errorf("user %s not loaded", id)
}

func (c *UserListController) OpenRegister() {
	c.nav.Navigate(RouteUserRegister, nil)
}
