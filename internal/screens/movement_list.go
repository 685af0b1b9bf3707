package screens

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"logistica/internal/alert"
	"logistica/internal/movements"
	"logistica/pkg/metadata"
	"logistica/pkg/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrPermissionDenied = errors.New("camera permission denied")
	ErrCanceled         = errors.New("image capture canceled")
)

// ImageSource captures the evidence photo. It returns ErrPermissionDenied
// when the camera may not be used and ErrCanceled when the user backs out.
type ImageSource interface {
	Capture(ctx context.Context) (*movements.Image, error)
}

// MovementRow is a movement together with what the list offers for it.
type MovementRow struct {
	Movement models.Movement
	Actions  []metadata.Transition
	ShowMap  bool
}

type MovementListController struct {
	api    BranchesAPI
	flow   *movements.Flow
	images ImageSource
	nav    Navigator
	alerts *alert.Gateway
	log    *zap.Logger

	mu        sync.Mutex
	branches  []models.Branch
	movements []models.Movement
}

func NewMovementListController(a BranchesAPI, flow *movements.Flow, images ImageSource, nav Navigator, alerts *alert.Gateway, log *zap.Logger) *MovementListController {
	c := &MovementListController{api: a, flow: flow, images: images, nav: nav, alerts: alerts, log: log}
	flow.OnRefresh(c.setMovements)
	return c
}

// Mount fetches branches and movements side by side. Both requests run to
// completion; the first error is returned.
func (c *MovementListController) Mount(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		branches, _, err := c.api.ListBranches(ctx)
		if err != nil {
			c.log.Error("Error fetching branches", zap.Error(err))
			return err
		}
		c.mu.Lock()
		c.branches = branches
		c.mu.Unlock()
		return nil
	})

	g.Go(func() error {
		_, err := c.flow.List(ctx)
		return err
	})

	return g.Wait()
}

// Refresh re-fetches the movements.
func (c *MovementListController) Refresh(ctx context.Context) error {
	_, err := c.flow.List(ctx)
	return err
}

func (c *MovementListController) setMovements(list []models.Movement) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.movements = list
}

func (c *MovementListController) Branches() []models.Branch {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]models.Branch(nil), c.branches...)
}

func (c *MovementListController) Rows() []MovementRow {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]MovementRow, 0, len(c.movements))
	for _, m := range c.movements {
		rows = append(rows, MovementRow{
			Movement: m,
			Actions:  m.Status.AllowedTransitions(),
			ShowMap:  m.Status.HasRoute(),
		})
	}
	return rows
}

func (c *MovementListController) find(id models.ID) (models.Movement, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, m := range c.movements {
		if m.ID == id {
			return m, true
		}
	}
	return models.Movement{}, false
}

func (c *MovementListController) Start(ctx context.Context, id models.ID) error {
	return c.Perform(ctx, id, metadata.TransitionStart)
}

func (c *MovementListController) End(ctx context.Context, id models.ID) error {
	return c.Perform(ctx, id, metadata.TransitionEnd)
}

// Perform captures an evidence photo and applies the transition to the
// movement. A canceled capture sends nothing and is not an error.
func (c *MovementListController) Perform(ctx context.Context, id models.ID, t metadata.Transition) error {
	m, ok := c.find(id)
	if !ok {
		return fmt.Errorf("movement %s not loaded", id)
	}

	image, err := c.images.Capture(ctx)
	switch {
	case errors.Is(err, ErrCanceled):
		c.log.Debug("Image capture canceled", zap.String("movement_id", id.String()))
		return nil
	case errors.Is(err, ErrPermissionDenied):
		c.alerts.NotifyError("Permissão de câmera necessária para capturar a imagem.")
		return err
	case err != nil:
		c.log.Error("Image capture failed", zap.Error(err))
		c.alerts.NotifyError("Não foi possível capturar a imagem.")
		return err
	}

	switch t {
	case metadata.TransitionStart:
		return c.flow.Start(ctx, m, image)
	case metadata.TransitionEnd:
		return c.flow.End(ctx, m, image)
	default:
		return fmt.Errorf("%w: %s", metadata.ErrInvalidTransition, t)
	}
}

// OpenMap shows the route of a movement.
func (c *MovementListController) OpenMap(id models.ID) error {
	m, ok := c.find(id)
	if !ok {
		return fmt.Errorf("movement %s not loaded", id)
	}

	c.nav.Navigate(RouteMap, MapParams{Origin: m.Origem, Destination: m.Destino})
	return nil
}

func (c *MovementListController) OpenRegister() {
	c.nav.Navigate(RouteMovementRegister, nil)
}
