package inventory

import (
	"context"
	"errors"
	"sort"
	"time"
)

// memStore is an in-memory Store used by the package tests. InTransaction
// snapshots state and restores it on error, mirroring a database rollback.
type memStore struct {
	items          map[uint]*InventoryItem
	movements      []StockMovement
	nextItemID     uint
	nextMovementID uint

	appendErr error
	saveErr   error
}

func newMemStore() *memStore {
	return &memStore{items: make(map[uint]*InventoryItem)}
}

// seedItem creates an inventory record directly, bypassing the service, so
// tests can start a product at an arbitrary quantity.
func (m *memStore) seedItem(productID uint, quantity int) {
	m.nextItemID++
	m.items[productID] = &InventoryItem{
		ID:        m.nextItemID,
		ProductID: productID,
		Quantity:  quantity,
		Status:    ItemStatusAvailable,
	}
}

func (m *memStore) snapshot() (map[uint]*InventoryItem, []StockMovement) {
	items := make(map[uint]*InventoryItem, len(m.items))
	for k, v := range m.items {
		copied := *v
		items[k] = &copied
	}
	movements := make([]StockMovement, len(m.movements))
	copy(movements, m.movements)
	return items, movements
}

func (m *memStore) InTransaction(ctx context.Context, fn func(Store) error) error {
	items, movements := m.snapshot()
	if err := fn(m); err != nil {
		m.items = items
		m.movements = movements
		return err
	}
	return nil
}

func (m *memStore) GetItem(ctx context.Context, productID uint) (*InventoryItem, error) {
	item, ok := m.items[productID]
	if !ok {
		return nil, ErrProductNotFound
	}
	copied := *item
	return &copied, nil
}

func (m *memStore) GetItemForUpdate(ctx context.Context, productID uint) (*InventoryItem, error) {
	return m.GetItem(ctx, productID)
}

func (m *memStore) CreateItem(ctx context.Context, item *InventoryItem) error {
	if _, exists := m.items[item.ProductID]; exists {
		return errors.New("duplicate inventory item")
	}
	m.nextItemID++
	item.ID = m.nextItemID
	copied := *item
	m.items[item.ProductID] = &copied
	return nil
}

func (m *memStore) SaveItem(ctx context.Context, item *InventoryItem) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *item
	m.items[item.ProductID] = &copied
	return nil
}

func (m *memStore) AppendMovement(ctx context.Context, movement *StockMovement) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.nextMovementID++
	movement.ID = m.nextMovementID
	if movement.CreatedAt.IsZero() {
		movement.CreatedAt = time.Now().UTC()
	}
	m.movements = append(m.movements, *movement)
	return nil
}

func (m *memStore) matching(filter MovementFilter) []StockMovement {
	var result []StockMovement
	for _, mv := range m.movements {
		if filter.ProductID > 0 && mv.ProductID != filter.ProductID {
			continue
		}
		if filter.MovementType != "" && mv.MovementType != filter.MovementType {
			continue
		}
		if filter.CreatedBy > 0 && mv.CreatedBy != filter.CreatedBy {
			continue
		}
		if filter.From != nil && mv.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && mv.CreatedAt.After(*filter.To) {
			continue
		}
		result = append(result, mv)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result
}

func (m *memStore) ListMovements(ctx context.Context, filter MovementFilter, offset, limit int) ([]StockMovement, error) {
	matching := m.matching(filter)
	if offset >= len(matching) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], nil
}

func (m *memStore) CountMovements(ctx context.Context, filter MovementFilter) (int64, error) {
	return int64(len(m.matching(filter))), nil
}
