package screens

import (
	"context"
	"strings"
	"sync"

	"logistica/internal/alert"
	"logistica/internal/api"
	"logistica/pkg/models"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
)

type ProductsAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, *api.Response, error)
}

type ProductListController struct {
	api    ProductsAPI
	alerts *alert.Gateway
	log    *zap.Logger

	mu       sync.RWMutex
	products []models.Product
}

func NewProductListController(a ProductsAPI, alerts *alert.Gateway, log *zap.Logger) *ProductListController {
	return &ProductListController{api: a, alerts: alerts, log: log}
}

func (c *ProductListController) Load(ctx context.Context) ([]models.Product, error) {
	products, _, err := c.api.ListProducts(ctx)
	if err != nil {
		c.log.Error("Error loading products", zap.Error(err))
		c.alerts.NotifyError("Não foi possível carregar os produtos.")
		return nil, err
	}

	c.mu.Lock()
	c.products = products
	c.mu.Unlock()

	return products, nil
}

// Search filters the loaded products by name, product name or branch,
// ignoring case. An empty term returns everything.
func (c *ProductListController) Search(term string) []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	term = strings.TrimSpace(term)
	if term == "" {
		return append([]models.Product(nil), c.products...)
	}

	fold := cases.Fold()
	needle := fold.String(term)

	var matches []models.Product
	for _, p := range c.products {
		for _, field := range []string{p.Name, p.ProductName, p.Branch} {
			if field != "" && strings.Contains(fold.String(field), needle) {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}
