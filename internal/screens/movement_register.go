package screens

import (
	"context"
	"sync"

	"logistica/internal/alert"
	"logistica/internal/api"
	"logistica/internal/movements"
	"logistica/pkg/models"

	"go.uber.org/zap"
)

type BranchesAPI interface {
	ListBranches(ctx context.Context) ([]models.Branch, *api.Response, error)
}

type MovementRegisterController struct {
	api    BranchesAPI
	flow   *movements.Flow
	nav    Navigator
	alerts *alert.Gateway
	log    *zap.Logger

	mu       sync.Mutex
	branches []models.Branch
	form     movements.Form
	image    *movements.Image
}

func NewMovementRegisterController(a BranchesAPI, flow *movements.Flow, nav Navigator, alerts *alert.Gateway, log *zap.Logger) *MovementRegisterController {
	return &MovementRegisterController{api: a, flow: flow, nav: nav, alerts: alerts, log: log}
}

// Mount loads the branch options. A failure is only logged; the pickers
// stay empty.
func (c *MovementRegisterController) Mount(ctx context.Context) ([]models.Branch, error) {
	branches, _, err := c.api.ListBranches(ctx)
	if err != nil {
		c.log.Error("Error fetching branches", zap.Error(err))
		return nil, err
	}

	c.mu.Lock()
	c.branches = branches
	c.mu.Unlock()

	return branches, nil
}

func (c *MovementRegisterController) Branches() []models.Branch {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]models.Branch(nil), c.branches...)
}

func (c *MovementRegisterController) SetForm(form movements.Form) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.form = form
}

func (c *MovementRegisterController) SetImage(image *movements.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.image = image
}

func (c *MovementRegisterController) Form() movements.Form {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.form
}

// Submit creates the movement from the current form. On success the form is
// reset and the movement list is opened, even if the start upload failed.
func (c *MovementRegisterController) Submit(ctx context.Context) (movements.CreateResult, error) {
	c.mu.Lock()
	form, image := c.form, c.image
	c.mu.Unlock()

	result, err := c.flow.Create(ctx, form, image)
	if err != nil {
		return result, err
	}

	c.mu.Lock()
	c.form = movements.Form{}
	c.image = nil
	c.mu.Unlock()

	c.nav.Navigate(RouteMovementList, nil)
	return result, nil
}
