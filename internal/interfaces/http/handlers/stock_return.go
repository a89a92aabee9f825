// internal/interfaces/http/handlers/stock_return.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/domain/inventory"
	"github.com/your-org/warehouse-backend/internal/domain/product"
	"github.com/your-org/warehouse-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// StockReturnHandler handles the return intake flow: barcode scanning and
// batch submission
type StockReturnHandler struct {
	inventoryService *inventory.Service
	productService   *product.Service
	config           *config.Config
}

// NewStockReturnHandler creates a new stock return handler
func NewStockReturnHandler(db *gorm.DB, cfg *config.Config) *StockReturnHandler {
	inventoryService := inventory.NewService(inventory.NewStore(db))
	return &StockReturnHandler{
		inventoryService: inventoryService,
		productService:   product.NewService(db, cfg, inventoryService),
		config:           cfg,
	}
}

// ScanRequest identifies a product being returned at the intake desk
type ScanRequest struct {
	Barcode  string `json:"barcode" binding:"required"`
	Quantity int    `json:"quantity"`
}

// ReturnSubmitRequest represents a completed return batch
type ReturnSubmitRequest struct {
	ReferenceNumber string `json:"reference_number" binding:"required"`
	Lines           []struct {
		ProductID uint `json:"product_id" binding:"required"`
		Quantity  int  `json:"quantity" binding:"required"`
	} `json:"lines" binding:"required,min=1,dive"`
}

// Scan resolves a barcode to a product and its current stock so the client
// can accumulate the return batch locally before submitting it.
func (h *StockReturnHandler) Scan(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if req.Quantity == 0 {
		req.Quantity = 1
	}
	if req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be positive",
		})
		return
	}

	p, err := h.productService.GetProductByBarcode(req.Barcode)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found for barcode",
		})
		return
	}

	batch := inventory.NewReturnBatch()
	if err := h.inventoryService.ScanReturn(c.Request.Context(), batch, p.ID, req.Quantity); err != nil {
		if errors.Is(err, inventory.ErrUnknownProduct) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product has no inventory record",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	line := batch.Lines[0]
	c.JSON(http.StatusOK, gin.H{
		"message": "Product scanned successfully",
		"data": gin.H{
			"product_id":    p.ID,
			"name":          p.Name,
			"barcode":       p.Barcode,
			"quantity":      line.Quantity,
			"stock_at_scan": line.StockAtScan,
		},
	})
}

// Submit commits a return batch. Each line is committed independently under
// the shared reference number; lines that fail are reported without undoing
// the ones already committed.
func (h *StockReturnHandler) Submit(c *gin.Context) {
	var req ReturnSubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	ctx := c.Request.Context()

	batch := inventory.NewReturnBatch()
	scanFailures := []inventory.ReturnLineResult{}
	for _, line := range req.Lines {
		if err := h.inventoryService.ScanReturn(ctx, batch, line.ProductID, line.Quantity); err != nil {
			scanFailures = append(scanFailures, inventory.ReturnLineResult{
				ProductID: line.ProductID,
				Success:   false,
				Error:     err.Error(),
			})
		}
	}

	result := h.inventoryService.SubmitReturnBatch(ctx, batch, req.ReferenceNumber, userID)
	result.Results = append(result.Results, scanFailures...)
	result.Failed += len(scanFailures)

	status := http.StatusCreated
	message := "Return batch submitted successfully"
	if result.Committed == 0 {
		status = http.StatusUnprocessableEntity
		message = "Return batch could not be committed"
	} else if result.Failed > 0 {
		message = "Return batch submitted with failures"
	}

	c.JSON(status, gin.H{
		"message": message,
		"data":    result,
	})
}
