// Package screens holds the controllers behind each screen of the app. They
// gather input, call the backend, update their local state and surface one
// alert per outcome. Rendering is left to the shell.
package screens

import (
	"sync"

	"logistica/pkg/models"
)

type Route string

const (
	RouteLogin            Route = "Login"
	RouteHome             Route = "Home"
	RouteProductList      Route = "ProductList"
	RouteUserList         Route = "UserList"
	RouteUserRegister     Route = "UserRegister"
	RouteMovementRegister Route = "MovementRegister"
	RouteMovementList     Route = "MovementList"
	RouteMovementsList    Route = "MovementsList"
	RouteMap              Route = "Map"
)

// MapParams is passed along when navigating to RouteMap.
type MapParams struct {
	Origin      models.Place
	Destination models.Place
}

type Navigator interface {
	Navigate(route Route, params any)
}

type Visit struct {
	Route  Route
	Params any
}

// History is a Navigator keeping every visited route in order.
type History struct {
	mu     sync.Mutex
	visits []Visit
}

func (h *History) Navigate(route Route, params any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.visits = append(h.visits, Visit{Route: route, Params: params})
}

// Current returns the last visit, if any.
func (h *History) Current() (Visit, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.visits) == 0 {
		return Visit{}, false
	}
	return h.visits[len(h.visits)-1], true
}

func (h *History) Visits() []Visit {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Visit(nil), h.visits...)
}
