package screens

import (
	"context"
	"strings"

	"logistica/internal/alert"
	"logistica/internal/api"
	"logistica/internal/session"
	custom_error "logistica/pkg/errors"
	"logistica/pkg/models"

	"go.uber.org/zap"
)

const (
	msgMissingFields = "Por favor, preencha todos os campos."
	msgLoginFailed   = "Erro ao realizar o login. Verifique suas credenciais."
)

type LoginAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, *api.Response, error)
}

type LoginController struct {
	api    LoginAPI
	store  session.Store
	nav    Navigator
	alerts *alert.Gateway
	log    *zap.Logger
}

func NewLoginController(a LoginAPI, store session.Store, nav Navigator, alerts *alert.Gateway, log *zap.Logger) *LoginController {
	return &LoginController{api: a, store: store, nav: nav, alerts: alerts, log: log}
}

// Submit authenticates the user, persists the session and opens the home screen.
func (c *LoginController) Submit(ctx context.Context, email, password string) (*models.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		err := custom_error.NewValidationError("email", msgMissingFields)
		c.alerts.NotifyError(msgMissingFields)
		return nil, err
	}

	resp, _, err := c.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		c.log.Error("Login failed", zap.String("email", email), zap.Error(err))
		c.alerts.NotifyError(msgLoginFailed)
		return nil, err
	}

	s := resp.Session(email)
	if err := c.store.Save(ctx, s); err != nil {
		c.log.Error("Unable to persist session", zap.Error(err))
		c.alerts.NotifyError(msgLoginFailed)
		return nil, err
	}

	c.log.Info("User logged in", zap.String("name", s.Name), zap.String("profile", s.Profile))
	c.nav.Navigate(RouteHome, nil)
	return &s, nil
}
