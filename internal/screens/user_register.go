package screens

import (
	"context"
	"strings"

	"logistica/internal/alert"
	"logistica/internal/api"
	custom_error "logistica/pkg/errors"
	"logistica/pkg/models"

	"go.uber.org/zap"
)

type RegisterAPI interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*api.Response, error)
}

type UserRegisterController struct {
	api    RegisterAPI
	nav    Navigator
	alerts *alert.Gateway
	log    *zap.Logger
}

func NewUserRegisterController(a RegisterAPI, nav Navigator, alerts *alert.Gateway, log *zap.Logger) *UserRegisterController {
	return &UserRegisterController{api: a, nav: nav, alerts: alerts, log: log}
}

func (c *UserRegisterController) Submit(ctx context.Context, req models.RegisterUserRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Profile = strings.TrimSpace(req.Profile)

	if req.Name == "" || req.Email == "" || req.Profile == "" || req.Password == "" {
		c.alerts.NotifyError(msgMissingFields)
		return custom_error.NewValidationError("user", msgMissingFields)
	}

	if _, err := c.api.Register(ctx, req); err != nil {
		c.log.Error("Error adding user", zap.String("email", req.Email), zap.Error(err))
		c.alerts.NotifyError("Não foi possível adicionar o usuário.")
		return err
	}

	c.alerts.NotifySuccess("Usuário adicionado com sucesso!")
	c.nav.Navigate(RouteUserList, nil)
	return nil
}
