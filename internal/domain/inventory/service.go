// internal/domain/inventory/service.go
package inventory

import (
	"context"
	"fmt"
)

// Service owns the stock-movement ledger: it is the only code path that
// mutates inventory quantities, and every mutation leaves exactly one
// ledger row behind.
type Service struct {
	store Store
}

// NewService creates a new inventory service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CommitInput describes one stock movement to record
type CommitInput struct {
	ProductID       uint         `json:"product_id" binding:"required"`
	Quantity        int          `json:"quantity" binding:"required"`
	MovementType    MovementType `json:"movement_type" binding:"required"`
	Reason          ReasonCode   `json:"reason" binding:"required"`
	Notes           string       `json:"notes,omitempty"`
	ReferenceNumber string       `json:"reference_number,omitempty"`
	CreatedBy       uint         `json:"-"`
}

// Commit atomically applies a stock movement: it locks the inventory row,
// re-checks sufficiency for outbound movements, writes the new quantity and
// appends the ledger row, all in one transaction. A failure anywhere rolls
// the whole movement back. Callers are expected to have run Validate first;
// the in-lock re-check exists to close the window between the two calls.
//
// Commit never retries: a failed commit must be resubmitted by the caller so
// a retry can never produce a duplicate ledger row.
func (s *Service) Commit(ctx context.Context, input CommitInput) (*StockMovement, error) {
	if input.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if !input.MovementType.IsValid() {
		return nil, fmt.Errorf("inventory: invalid movement type: %s", input.MovementType)
	}
	if !ValidReason(input.MovementType, input.Reason) {
		return nil, ErrInvalidReason
	}

	var movement *StockMovement
	err := s.store.InTransaction(ctx, func(tx Store) error {
		item, err := tx.GetItemForUpdate(ctx, input.ProductID)
		if err != nil {
			return err
		}

		previousStock := item.Quantity
		var currentStock int
		if input.MovementType.IsInbound() {
			currentStock = previousStock + input.Quantity
		} else {
			if input.Quantity > previousStock {
				return &InsufficientStockError{
					ProductID: input.ProductID,
					Available: previousStock,
					Requested: input.Quantity,
				}
			}
			currentStock = previousStock - input.Quantity
		}

		item.Quantity = currentStock
		if err := tx.SaveItem(ctx, item); err != nil {
			return err
		}

		movement = &StockMovement{
			ProductID:       input.ProductID,
			MovementType:    input.MovementType,
			Reason:          input.Reason,
			Quantity:        input.Quantity,
			PreviousStock:   previousStock,
			CurrentStock:    currentStock,
			ReferenceNumber: input.ReferenceNumber,
			Notes:           input.Notes,
			CreatedBy:       input.CreatedBy,
		}
		return tx.AppendMovement(ctx, movement)
	})
	if err != nil {
		return nil, err
	}

	return movement, nil
}

// CreateItem creates the inventory record for a newly created product. A
// non-zero initial quantity is recorded as an initial_stock movement so the
// ledger explains every unit on hand.
func (s *Service) CreateItem(ctx context.Context, productID uint, initialQuantity int, createdBy uint) (*InventoryItem, error) {
	if initialQuantity < 0 {
		return nil, ErrInvalidQuantity
	}

	item := &InventoryItem{
		ProductID: productID,
		Quantity:  0,
		Status:    ItemStatusAvailable,
	}
	if err := s.store.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	if initialQuantity > 0 {
		if _, err := s.Commit(ctx, CommitInput{
			ProductID:    productID,
			Quantity:     initialQuantity,
			MovementType: MovementTypeStockIn,
			Reason:       ReasonInitialStock,
			CreatedBy:    createdBy,
		}); err != nil {
			return nil, err
		}
		item.Quantity = initialQuantity
	}

	return item, nil
}

// GetItem returns the inventory record for a product
func (s *Service) GetItem(ctx context.Context, productID uint) (*InventoryItem, error) {
	return s.store.GetItem(ctx, productID)
}

// GetStockLevel returns the current on-hand quantity for a product
func (s *Service) GetStockLevel(ctx context.Context, productID uint) (int, error) {
	item, err := s.store.GetItem(ctx, productID)
	if err != nil {
		return 0, err
	}
	return item.Quantity, nil
}

// SetItemStatus flips an item between available and unavailable. Quantity is
// untouched; status only gates whether the catalog lists the product.
func (s *Service) SetItemStatus(ctx context.Context, productID uint, status ItemStatus) error {
	item, err := s.store.GetItem(ctx, productID)
	if err != nil {
		return err
	}
	item.Status = status
	return s.store.SaveItem(ctx, item)
}
