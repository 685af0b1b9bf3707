package devserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Repository CatalogRepository
}

func NewCatalogHandler(r CatalogRepository) *CatalogHandler {
	return &CatalogHandler{Repository: r}
}

func (h *CatalogHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/products", h.GetProducts)
	router.GET("/branches/options", h.GetBranchOptions)
}

func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.Repository.GetProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetBranchOptions(c *gin.Context) {
	branches, err := h.Repository.GetBranches()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch branches", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, branches)
}
