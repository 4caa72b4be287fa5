package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/HaqueArif/shine-on-server/internal/service"
)

// SupplyHandler serves the supply CRUD endpoints.
type SupplyHandler struct {
	supplyService *service.SupplyService
}

// NewSupplyHandler creates a SupplyHandler.
func NewSupplyHandler(supplyService *service.SupplyService) *SupplyHandler {
	return &SupplyHandler{supplyService: supplyService}
}

// List handles GET /api/auth/all-supplies.
func (h *SupplyHandler) List(c *gin.Context) {
	items, err := h.supplyService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	if items == nil {
		items = []bson.M{}
	}
	c.JSON(http.StatusOK, items)
}

// Create handles POST /api/auth/all-supplies. The body is forwarded to
// storage as-is, restricted to the supply fields; nothing is validated.
func (h *SupplyHandler) Create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		logrus.WithError(err).Warn("Handler.CreateSupply: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	fields := bson.M{
		"image":       body["image"],
		"category":    body["category"],
		"title":       body["title"],
		"amount":      body["amount"],
		"description": body["description"],
	}
	if err := h.supplyService.Create(c.Request.Context(), fields); err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "New supply added successful",
	})
}

// Update handles PUT /api/auth/all-supplies/:id. Exactly the provided
// fields are overwritten on the matching item.
func (h *SupplyHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		logrus.WithError(err).Warn("Handler.UpdateSupply: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.supplyService.Update(c.Request.Context(), id, bson.M(body)); err != nil {
		logrus.WithError(err).WithField("item_id", id).Warn("Handler.UpdateSupply: update failed")
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Supply item updated successfully"})
}

// Delete handles DELETE /api/auth/all-supplies/:id. The response mirrors the
// driver's delete result: an acknowledgement plus the removed count (0 or 1).
func (h *SupplyHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.supplyService.Delete(c.Request.Context(), id)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"acknowledged": true,
		"deletedCount": deleted,
	})
}
