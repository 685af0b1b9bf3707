package container

import (
	"context"
	"fmt"

	"logistica/internal/alert"
	"logistica/internal/api"
	"logistica/internal/config"
	"logistica/internal/movements"
	"logistica/internal/screens"
	"logistica/internal/session"

	"go.uber.org/zap"
)

// Container wires every client component from a Config.
type Container struct {
	Config    config.Config
	Log       *zap.Logger
	Store     session.Store
	Client    *api.Client
	Alerts    *alert.Gateway
	Flow      *movements.Flow
	Navigator *screens.History

	App              *screens.App
	Login            *screens.LoginController
	Home             *screens.HomeController
	Products         *screens.ProductListController
	Users            *screens.UserListController
	UserRegister     *screens.UserRegisterController
	MovementRegister *screens.MovementRegisterController
	MovementList     *screens.MovementListController
	Map              *screens.MapController

	closers []func() error
}

func NewAppContainer(cfg config.Config, log *zap.Logger, notifier alert.Notifier, images screens.ImageSource) (*Container, error) {
	c := &Container{Config: cfg, Log: log}

	store, err := c.openStore()
	if err != nil {
		return nil, err
	}
	c.Store = store

	c.Client = api.NewClient(
		api.Config{BaseURL: cfg.APIURL, Timeout: cfg.Timeout},
		log,
		api.WithTokenSource(c.token),
		api.WithUnauthorizedHandler(c.unauthorized),
	)

	c.Alerts = alert.NewGateway(notifier, log)
	c.Flow = movements.NewFlow(c.Client, c.Alerts, log)
	c.Navigator = &screens.History{}

	c.App = screens.NewApp(store)
	c.Login = screens.NewLoginController(c.Client, store, c.Navigator, c.Alerts, log)
	c.Home = screens.NewHomeController(store, c.Navigator, c.Alerts, log)
	c.Products = screens.NewProductListController(c.Client, c.Alerts, log)
	c.Users = screens.NewUserListController(c.Client, c.Navigator, c.Alerts, log)
	c.UserRegister = screens.NewUserRegisterController(c.Client, c.Navigator, c.Alerts, log)
	c.MovementRegister = screens.NewMovementRegisterController(c.Client, c.Flow, c.Navigator, c.Alerts, log)
	c.MovementList = screens.NewMovementListController(c.Client, c.Flow, images, c.Navigator, c.Alerts, log)
	c.Map = screens.NewMapController()

	return c, nil
}

func (c *Container) openStore() (session.Store, error) {
	switch c.Config.SessionBackend {
	case config.SessionBackendSQLite:
		store, err := session.OpenSQLiteStore(c.Config.DataDir, c.Log)
		if err != nil {
			return nil, fmt.Errorf("open session store: %w", err)
		}
		c.closers = append(c.closers, store.Close)
		return store, nil
	default:
		return session.NewFileStore(c.Config.DataDir, c.Log), nil
	}
}

func (c *Container) token(ctx context.Context) string {
	s, ok := c.Store.Load(ctx)
	if !ok {
		return ""
	}
	return s.Token
}

// unauthorized drops the stored session so the next start lands on Login.
func (c *Container) unauthorized(ctx context.Context, status int) {
	if _, ok := c.Store.Load(ctx); !ok {
		return
	}

	c.Log.Warn("Backend rejected the session, clearing it", zap.Int("status", status))
	if err := c.Store.Clear(ctx); err != nil {
		c.Log.Error("Unable to clear rejected session", zap.Error(err))
	}
}

func (c *Container) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
