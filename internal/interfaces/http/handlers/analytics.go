// internal/interfaces/http/handlers/analytics.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/domain/analytics"
	"gorm.io/gorm"
)

// AnalyticsHandler handles dashboard endpoints
type AnalyticsHandler struct {
	analyticsService *analytics.Service
	config           *config.Config
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analytics.NewService(db, redisClient, cfg),
		config:           cfg,
	}
}

// GetDashboard returns headline warehouse statistics
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	stats, err := h.analyticsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve dashboard statistics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard statistics retrieved successfully",
		"data":    stats,
	})
}

// GetMovementSeries returns daily movement counts for charting
func (h *AnalyticsHandler) GetMovementSeries(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "7"))

	series, err := h.analyticsService.GetMovementSeries(c.Request.Context(), days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve movement series",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Movement series retrieved successfully",
		"data":    series,
	})
}

// GetTopMovedProducts returns the most active products of the last 30 days
func (h *AnalyticsHandler) GetTopMovedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	products, err := h.analyticsService.GetTopMovedProducts(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve top products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Top moved products retrieved successfully",
		"data":    products,
	})
}

// GetRecentMovements returns the latest ledger rows for the dashboard feed
func (h *AnalyticsHandler) GetRecentMovements(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	movements, err := h.analyticsService.GetRecentMovements(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve recent movements",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Recent movements retrieved successfully",
		"data":    movements,
	})
}

// GetLowStockProducts returns products at or below the low-stock threshold
func (h *AnalyticsHandler) GetLowStockProducts(c *gin.Context) {
	threshold, _ := strconv.Atoi(c.DefaultQuery("threshold", "5"))

	products, err := h.analyticsService.GetLowStockProducts(c.Request.Context(), threshold)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve low stock products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Low stock products retrieved successfully",
		"data":    products,
	})
}
