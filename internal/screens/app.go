package screens

import (
	"context"

	"logistica/internal/session"
)

type App struct {
	store session.Store
}

func NewApp(store session.Store) *App {
	return &App{store: store}
}

// InitialRoute gates the first screen on the presence of a stored session.
func (a *App) InitialRoute(ctx context.Context) Route {
	if _, ok := a.store.Load(ctx); ok {
		return RouteHome
	}
	return RouteLogin
}
