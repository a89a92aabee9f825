// internal/interfaces/http/handlers/report.go
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// Movement rows on a report are capped to keep the PDF renderable
const reportRowLimit = 2000

// ReportHandler handles PDF report exports
type ReportHandler struct {
	db         *gorm.DB
	pdfService *pdf.Service
	config     *config.Config
}

// NewReportHandler creates a new report handler
func NewReportHandler(db *gorm.DB, cfg *config.Config) *ReportHandler {
	return &ReportHandler{
		db:         db,
		pdfService: pdf.NewService(cfg),
		config:     cfg,
	}
}

// DownloadMovementReport renders the movement history as a PDF download.
// Supports the same product_id/from/to filters as the history endpoint.
func (h *ReportHandler) DownloadMovementReport(c *gin.Context) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		t, err := parseTimeParam(raw, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date"})
			return
		}
		from = t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parseTimeParam(raw, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date"})
			return
		}
		to = t
	}

	query := h.db.WithContext(c.Request.Context()).Table("stock_movements").
		Select(`stock_movements.created_at,
			products.name as product_name,
			products.barcode,
			stock_movements.movement_type,
			stock_movements.reason,
			stock_movements.quantity,
			stock_movements.previous_stock,
			stock_movements.current_stock,
			stock_movements.reference_number,
			CONCAT(users.first_name, ' ', users.last_name) as created_by_name`).
		Joins("JOIN products ON products.id = stock_movements.product_id").
		Joins("LEFT JOIN users ON users.id = stock_movements.created_by").
		Order("stock_movements.created_at DESC, stock_movements.id DESC").
		Limit(reportRowLimit)

	if raw := c.Query("product_id"); raw != "" {
		query = query.Where("stock_movements.product_id = ?", raw)
	}
	if from != nil {
		query = query.Where("stock_movements.created_at >= ?", *from)
	}
	if to != nil {
		query = query.Where("stock_movements.created_at <= ?", *to)
	}

	var rows []pdf.MovementReportRow
	if err := query.Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load movement history",
		})
		return
	}

	buf, err := h.pdfService.GenerateMovementReport(rows, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate report",
		})
		return
	}

	filename := fmt.Sprintf("stock-movements-%s.pdf", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
