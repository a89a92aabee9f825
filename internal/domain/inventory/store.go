// internal/domain/inventory/store.go
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MovementFilter narrows ledger queries. Zero values mean "not filtered".
// From and To are inclusive bounds on the movement timestamp.
type MovementFilter struct {
	ProductID    uint
	MovementType MovementType
	CreatedBy    uint
	From         *time.Time
	To           *time.Time
}

// Store is the narrow persistence contract the ledger operates against.
// InTransaction must provide all-or-nothing semantics for the writes issued
// through the Store it passes to fn, and GetItemForUpdate must hold a
// row-level lock on the item until that transaction ends.
type Store interface {
	InTransaction(ctx context.Context, fn func(Store) error) error
	GetItem(ctx context.Context, productID uint) (*InventoryItem, error)
	GetItemForUpdate(ctx context.Context, productID uint) (*InventoryItem, error)
	CreateItem(ctx context.Context, item *InventoryItem) error
	SaveItem(ctx context.Context, item *InventoryItem) error
	AppendMovement(ctx context.Context, movement *StockMovement) error
	ListMovements(ctx context.Context, filter MovementFilter, offset, limit int) ([]StockMovement, error)
	CountMovements(ctx context.Context, filter MovementFilter) (int64, error)
}

// gormStore implements Store on top of a gorm connection or transaction
type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by the given database connection
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) InTransaction(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

func (s *gormStore) GetItem(ctx context.Context, productID uint) (*InventoryItem, error) {
	var item InventoryItem
	err := s.db.WithContext(ctx).Where("product_id = ?", productID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load inventory item: %w", err)
	}
	return &item, nil
}

// GetItemForUpdate loads the item under a row-level lock. Concurrent commits
// against the same product serialize on this lock.
func (s *gormStore) GetItemForUpdate(ctx context.Context, productID uint) (*InventoryItem, error) {
	var item InventoryItem
	err := s.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("product_id = ?", productID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to lock inventory item: %w", err)
	}
	return &item, nil
}

func (s *gormStore) CreateItem(ctx context.Context, item *InventoryItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create inventory item: %w", err)
	}
	return nil
}

func (s *gormStore) SaveItem(ctx context.Context, item *InventoryItem) error {
	if err := s.db.WithContext(ctx).Save(item).Error; err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	return nil
}

func (s *gormStore) AppendMovement(ctx context.Context, movement *StockMovement) error {
	if err := s.db.WithContext(ctx).Create(movement).Error; err != nil {
		return fmt.Errorf("failed to record movement: %w", err)
	}
	return nil
}

func (s *gormStore) ListMovements(ctx context.Context, filter MovementFilter, offset, limit int) ([]StockMovement, error) {
	var movements []StockMovement
	query := s.applyFilter(s.db.WithContext(ctx).Model(&StockMovement{}), filter).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit)
	if err := query.Find(&movements).Error; err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return movements, nil
}

func (s *gormStore) CountMovements(ctx context.Context, filter MovementFilter) (int64, error) {
	var total int64
	query := s.applyFilter(s.db.WithContext(ctx).Model(&StockMovement{}), filter)
	if err := query.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count movements: %w", err)
	}
	return total, nil
}

func (s *gormStore) applyFilter(query *gorm.DB, filter MovementFilter) *gorm.DB {
	if filter.ProductID > 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.MovementType != "" {
		query = query.Where("movement_type = ?", filter.MovementType)
	}
	if filter.CreatedBy > 0 {
		query = query.Where("created_by = ?", filter.CreatedBy)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at <= ?", *filter.To)
	}
	return query
}
