// internal/interfaces/http/handlers/inventory.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/domain/inventory"
	"github.com/your-org/warehouse-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// InventoryHandler handles stock movement endpoints
type InventoryHandler struct {
	inventoryService *inventory.Service
	config           *config.Config
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(db *gorm.DB, cfg *config.Config) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventory.NewService(inventory.NewStore(db)),
		config:           cfg,
	}
}

// MovementRequest represents a stock-in or stock-out request body. The
// movement type comes from the route, not the body.
type MovementRequest struct {
	ProductID       uint   `json:"product_id" binding:"required"`
	Quantity        int    `json:"quantity" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
	Notes           string `json:"notes"`
	ReferenceNumber string `json:"reference_number"`
}

// StockIn records an inbound stock movement
func (h *InventoryHandler) StockIn(c *gin.Context) {
	h.commitMovement(c, inventory.MovementTypeStockIn, "Stock added successfully")
}

// StockOut records an outbound stock movement
func (h *InventoryHandler) StockOut(c *gin.Context) {
	h.commitMovement(c, inventory.MovementTypeStockOut, "Stock removed successfully")
}

func (h *InventoryHandler) commitMovement(c *gin.Context, movementType inventory.MovementType, successMessage string) {
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)

	movement, err := h.inventoryService.Commit(c.Request.Context(), inventory.CommitInput{
		ProductID:       req.ProductID,
		Quantity:        req.Quantity,
		MovementType:    movementType,
		Reason:          inventory.ReasonCode(req.Reason),
		Notes:           req.Notes,
		ReferenceNumber: req.ReferenceNumber,
		CreatedBy:       userID,
	})
	if err != nil {
		h.respondMovementError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": successMessage,
		"data":    movement,
	})
}

// ValidateMovement checks a movement without committing it
func (h *InventoryHandler) ValidateMovement(c *gin.Context) {
	var req struct {
		ProductID    uint   `json:"product_id" binding:"required"`
		Quantity     int    `json:"quantity" binding:"required"`
		MovementType string `json:"movement_type" binding:"required"`
		Reason       string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	err := h.inventoryService.Validate(
		c.Request.Context(),
		req.ProductID,
		req.Quantity,
		inventory.MovementType(req.MovementType),
		inventory.ReasonCode(req.Reason),
	)
	if err != nil {
		h.respondMovementError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Movement is valid",
		"data":    gin.H{"valid": true},
	})
}

// GetItem returns the inventory item for a product
func (h *InventoryHandler) GetItem(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	item, err := h.inventoryService.GetItem(c.Request.Context(), uint(productID))
	if err != nil {
		h.respondMovementError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Inventory item retrieved successfully",
		"data":    item,
	})
}

// UpdateItemStatus marks an inventory item available or unavailable
func (h *InventoryHandler) UpdateItemStatus(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required,oneof=available unavailable"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.inventoryService.SetItemStatus(c.Request.Context(), uint(productID), inventory.ItemStatus(req.Status)); err != nil {
		h.respondMovementError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item status updated successfully",
	})
}

// GetMovements returns the paginated movement history. Non-admin users only
// see their own movements.
func (h *InventoryHandler) GetMovements(c *gin.Context) {
	req, err := h.bindHistoryRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if !middleware.IsAdminFromContext(c) {
		userID, _ := middleware.GetUserIDFromContext(c)
		req.Filter.CreatedBy = userID
	}

	history, err := h.inventoryService.QueryMovements(c.Request.Context(), *req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve movements",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Movements retrieved successfully",
		"data":    history,
	})
}

// bindHistoryRequest parses pagination and filter query parameters
func (h *InventoryHandler) bindHistoryRequest(c *gin.Context) (*inventory.HistoryRequest, error) {
	var req inventory.HistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return nil, err
	}

	if raw := c.Query("product_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		req.Filter.ProductID = uint(id)
	}
	if raw := c.Query("movement_type"); raw != "" {
		movementType := inventory.MovementType(raw)
		if !movementType.IsValid() {
			return nil, errors.New("invalid movement_type")
		}
		req.Filter.MovementType = movementType
	}
	if raw := c.Query("created_by"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		req.Filter.CreatedBy = uint(id)
	}
	if raw := c.Query("from"); raw != "" {
		from, err := parseTimeParam(raw, false)
		if err != nil {
			return nil, err
		}
		req.Filter.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := parseTimeParam(raw, true)
		if err != nil {
			return nil, err
		}
		req.Filter.To = to
	}

	return &req, nil
}

// parseTimeParam accepts RFC3339 timestamps or plain dates. A plain date
// used as an upper bound covers the whole day.
func parseTimeParam(raw string, endOfDay bool) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}

	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// respondMovementError maps ledger errors to HTTP status codes
func (h *InventoryHandler) respondMovementError(c *gin.Context, err error) {
	switch {
	case inventory.IsInsufficientStock(err):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, inventory.ErrProductNotFound), errors.Is(err, inventory.ErrUnknownProduct):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, inventory.ErrInvalidQuantity), errors.Is(err, inventory.ErrInvalidReason):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to process movement",
		})
	}
}
