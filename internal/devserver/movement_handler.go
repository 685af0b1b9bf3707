package devserver

import (
	"errors"
	"net/http"
	"time"

	"logistica/pkg/metadata"
	"logistica/pkg/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type MovementHandler struct {
	Repository MovementRepository
	Catalog    CatalogRepository
	log        *zap.Logger
	now        func() time.Time
}

func NewMovementHandler(r MovementRepository, catalog CatalogRepository, log *zap.Logger) *MovementHandler {
	return &MovementHandler{Repository: r, Catalog: catalog, log: log, now: time.Now}
}

func (h *MovementHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/movements", h.GetMovements)
	router.POST("/movements", h.CreateMovement)
	router.PUT("/movements/:id/start", h.transition(metadata.TransitionStart))
	router.PUT("/movements/:id/end", h.transition(metadata.TransitionEnd))
}

func (h *MovementHandler) GetMovements(c *gin.Context) {
	movements, err := h.Repository.GetMovements()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch movements", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, movements)
}

func (h *MovementHandler) CreateMovement(c *gin.Context) {
	var req models.CreateMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	quantity, err := decimal.NewFromString(req.Quantity.String())
	if err != nil || !quantity.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity must be a positive number"})
		return
	}

	if req.OriginBranchID == req.DestinationBranchID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "origin and destination must differ"})
		return
	}

	origin, err := h.Catalog.GetSite(req.OriginBranchID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown origin branch"})
		return
	}
	destination, err := h.Catalog.GetSite(req.DestinationBranchID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown destination branch"})
		return
	}
	product, err := h.Catalog.GetProduct(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown product"})
		return
	}

	movement := newMovement(*origin, *destination, *product, models.NewQuantity(quantity), req.Motorista)
	created, err := h.Repository.PersistMovement(movement)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create movement", "details": err.Error()})
		return
	}

	h.log.Info("Movement created", zap.String("movement_id", created.ID.String()))
	c.JSON(http.StatusCreated, models.CreateMovementResponse{ID: created.ID})
}

func (h *MovementHandler) transition(t metadata.Transition) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := models.ID(c.Param("id"))

		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required", "details": err.Error()})
			return
		}

		evidence := Evidence{
			Transition:  t,
			FileName:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Size:        file.Size,
			Motorista:   c.PostForm("motorista"),
			ReceivedAt:  h.now(),
		}

		movement, err := h.Repository.TransitionMovement(id, t, evidence)
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Unable to find movement", "code": "MOVEMENT_NOT_FOUND"})
			return
		case errors.Is(err, metadata.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "Invalid status transition", "details": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update movement", "details": err.Error()})
			return
		}

		h.log.Info("Movement updated",
			zap.String("movement_id", id.String()),
			zap.String("status", movement.Status.String()),
			zap.Int64("evidence_bytes", file.Size),
		)
		c.JSON(http.StatusOK, movement)
	}
}
