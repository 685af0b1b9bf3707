package screens

import (
	"context"

	"logistica/internal/alert"
	"logistica/internal/session"

	"go.uber.org/zap"
)

type MenuItem struct {
	Label string
	Route Route
}

var homeMenu = []MenuItem{
	{Label: "Lista de Produtos", Route: RouteProductList},
	{Label: "Gerenciar Usuários", Route: RouteUserList},
	{Label: "Listar / Adicionar Movimentações", Route: RouteMovementList},
	{Label: "Movements", Route: RouteMovementsList},
}

type HomeController struct {
	store  session.Store
	nav    Navigator
	alerts *alert.Gateway
	log    *zap.Logger
}

func NewHomeController(store session.Store, nav Navigator, alerts *alert.Gateway, log *zap.Logger) *HomeController {
	return &HomeController{store: store, nav: nav, alerts: alerts, log: log}
}

// Header renders "name - profile" for the stored session, or "" when logged out.
func (c *HomeController) Header(ctx context.Context) string {
	s, ok := c.store.Load(ctx)
	if !ok {
		return ""
	}
	return s.Name + " - " + s.Profile
}

func (c *HomeController) Menu() []MenuItem {
	return append([]MenuItem(nil), homeMenu...)
}

func (c *HomeController) Open(route Route) {
	c.nav.Navigate(route, nil)
}

// Logout clears the session and returns to the login screen.
func (c *HomeController) Logout(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error("Unable to clear session", zap.Error(err))
		c.alerts.NotifyError("Não foi possível sair. Tente novamente.")
		return err
	}

	c.nav.Navigate(RouteLogin, nil)
	return nil
}
