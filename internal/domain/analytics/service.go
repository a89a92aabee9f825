// internal/domain/analytics/service.go
package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/warehouse-backend/internal/config"
	"github.com/your-org/warehouse-backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// Service handles dashboard aggregation over the catalog and the ledger
type Service struct {
	db     *gorm.DB
	redis  *redis.Client
	config *config.Config
}

// NewService creates a new analytics service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		redis:  redisClient,
		config: cfg,
	}
}

const dashboardCacheKey = "analytics:dashboard"
const dashboardCacheTTL = time.Minute

// DashboardStats represents overall dashboard statistics
type DashboardStats struct {
	// Catalog metrics
	TotalProducts      int64 `json:"total_products"`
	ActiveProducts     int64 `json:"active_products"`
	OutOfStockProducts int64 `json:"out_of_stock_products"`
	TotalStockUnits    int64 `json:"total_stock_units"`

	// Today's movement counts
	StockInToday     int64 `json:"stock_in_today"`
	StockOutToday    int64 `json:"stock_out_today"`
	StockReturnToday int64 `json:"stock_return_today"`

	// Ledger totals
	TotalMovements int64 `json:"total_movements"`

	GeneratedAt time.Time `json:"generated_at"`
}

// MovementSeriesPoint represents one day of movement activity
type MovementSeriesPoint struct {
	Date        string `json:"date"`
	StockIn     int64  `json:"stock_in"`
	StockOut    int64  `json:"stock_out"`
	StockReturn int64  `json:"stock_return"`
}

// TopMovedProduct represents a product ranked by movement volume
type TopMovedProduct struct {
	ProductID     uint   `json:"product_id"`
	Name          string `json:"name"`
	Barcode       string `json:"barcode"`
	MovementCount int64  `json:"movement_count"`
	UnitsMoved    int64  `json:"units_moved"`
}

// LowStockProduct represents a product at or below the low-stock threshold
type LowStockProduct struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Barcode   string `json:"barcode"`
	Quantity  int    `json:"quantity"`
}

// GetDashboardStats computes headline numbers for the admin dashboard.
// Results are cached in Redis for a minute; a cache failure falls back to
// the database silently.
func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	stats := &DashboardStats{GeneratedAt: time.Now().UTC()}

	if err := s.db.WithContext(ctx).Table("products").Where("deleted_at IS NULL").Count(&stats.TotalProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	if err := s.db.WithContext(ctx).Table("products").Where("deleted_at IS NULL AND is_active = ?", true).Count(&stats.ActiveProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count active products: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&inventory.InventoryItem{}).Where("quantity <= 0").Count(&stats.OutOfStockProducts).Error; err != nil {
		return nil, fmt.Errorf("failed to count out-of-stock products: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&inventory.InventoryItem{}).Select("COALESCE(SUM(quantity), 0)").Scan(&stats.TotalStockUnits).Error; err != nil {
		return nil, fmt.Errorf("failed to sum stock units: %w", err)
	}
	if err := s.db.WithContext(ctx).Model(&inventory.StockMovement{}).Count(&stats.TotalMovements).Error; err != nil {
		return nil, fmt.Errorf("failed to count movements: %w", err)
	}

	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)
	todayCounts := []struct {
		MovementType inventory.MovementType
		Count        int64
	}{}
	err := s.db.WithContext(ctx).Model(&inventory.StockMovement{}).
		Select("movement_type, COUNT(*) as count").
		Where("created_at >= ?", startOfDay).
		Group("movement_type").
		Scan(&todayCounts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count today's movements: %w", err)
	}
	for _, row := range todayCounts {
		switch row.MovementType {
		case inventory.MovementTypeStockIn:
			stats.StockInToday = row.Count
		case inventory.MovementTypeStockOut:
			stats.StockOutToday = row.Count
		case inventory.MovementTypeStockReturn:
			stats.StockReturnToday = row.Count
		}
	}

	if s.redis != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			s.redis.Set(ctx, dashboardCacheKey, encoded, dashboardCacheTTL)
		}
	}

	return stats, nil
}

// GetMovementSeries returns per-day movement counts for the last `days` days
func (s *Service) GetMovementSeries(ctx context.Context, days int) ([]MovementSeriesPoint, error) {
	if days < 1 || days > 90 {
		days = 7
	}

	since := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(days - 1))

	var rows []struct {
		Day          time.Time
		MovementType inventory.MovementType
		Count        int64
	}
	err := s.db.WithContext(ctx).Model(&inventory.StockMovement{}).
		Select("DATE_TRUNC('day', created_at) as day, movement_type, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("day, movement_type").
		Order("day ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to build movement series: %w", err)
	}

	// Emit a point for every day so the chart has no gaps
	points := make([]MovementSeriesPoint, days)
	index := map[string]*MovementSeriesPoint{}
	for i := 0; i < days; i++ {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		points[i] = MovementSeriesPoint{Date: date}
		index[date] = &points[i]
	}
	for _, row := range rows {
		point, ok := index[row.Day.Format("2006-01-02")]
		if !ok {
			continue
		}
		switch row.MovementType {
		case inventory.MovementTypeStockIn:
			point.StockIn = row.Count
		case inventory.MovementTypeStockOut:
			point.StockOut = row.Count
		case inventory.MovementTypeStockReturn:
			point.StockReturn = row.Count
		}
	}

	return points, nil
}

// GetTopMovedProducts ranks products by ledger activity over the last 30 days
func (s *Service) GetTopMovedProducts(ctx context.Context, limit int) ([]TopMovedProduct, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	since := time.Now().UTC().AddDate(0, 0, -30)

	var products []TopMovedProduct
	err := s.db.WithContext(ctx).Table("stock_movements").
		Select("stock_movements.product_id, products.name, products.barcode, COUNT(*) as movement_count, COALESCE(SUM(stock_movements.quantity), 0) as units_moved").
		Joins("JOIN products ON products.id = stock_movements.product_id").
		Where("stock_movements.created_at >= ?", since).
		Group("stock_movements.product_id, products.name, products.barcode").
		Order("movement_count DESC").
		Limit(limit).
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank products: %w", err)
	}

	return products, nil
}

// RecentMovement is a ledger row joined with its product for dashboard display
type RecentMovement struct {
	MovementID      uint                   `json:"movement_id"`
	ProductID       uint                   `json:"product_id"`
	ProductName     string                 `json:"product_name"`
	Barcode         string                 `json:"barcode"`
	MovementType    inventory.MovementType `json:"movement_type"`
	Reason          inventory.ReasonCode   `json:"reason"`
	Quantity        int                    `json:"quantity"`
	PreviousStock   int                    `json:"previous_stock"`
	CurrentStock    int                    `json:"current_stock"`
	ReferenceNumber string                 `json:"reference_number"`
	CreatedAt       time.Time              `json:"created_at"`
}

// GetRecentMovements returns the latest ledger rows for the dashboard feed
func (s *Service) GetRecentMovements(ctx context.Context, limit int) ([]RecentMovement, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}

	var movements []RecentMovement
	err := s.db.WithContext(ctx).Table("stock_movements").
		Select(`stock_movements.id as movement_id, stock_movements.product_id,
			products.name as product_name, products.barcode,
			stock_movements.movement_type, stock_movements.reason,
			stock_movements.quantity, stock_movements.previous_stock,
			stock_movements.current_stock, stock_movements.reference_number,
			stock_movements.created_at`).
		Joins("JOIN products ON products.id = stock_movements.product_id").
		Order("stock_movements.created_at DESC, stock_movements.id DESC").
		Limit(limit).
		Scan(&movements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list recent movements: %w", err)
	}

	return movements, nil
}

// GetLowStockProducts lists active products at or below the given threshold
func (s *Service) GetLowStockProducts(ctx context.Context, threshold int) ([]LowStockProduct, error) {
	if threshold < 0 {
		threshold = 5
	}

	var products []LowStockProduct
	err := s.db.WithContext(ctx).Table("inventory_items").
		Select("inventory_items.product_id, products.name, products.barcode, inventory_items.quantity").
		Joins("JOIN products ON products.id = inventory_items.product_id").
		Where("products.deleted_at IS NULL AND products.is_active = ? AND inventory_items.quantity <= ?", true, threshold).
		Order("inventory_items.quantity ASC").
		Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list low stock products: %w", err)
	}

	return products, nil
}
