// internal/domain/inventory/validator.go
package inventory

import (
	"context"
)

// Validate checks movement preconditions without writing anything. For
// outbound movements it checks sufficiency against the current on-hand
// quantity; Commit re-checks under the row lock, so passing validation here
// does not guarantee the commit will succeed.
func (s *Service) Validate(ctx context.Context, productID uint, quantity int, movementType MovementType, reason ReasonCode) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if !ValidReason(movementType, reason) {
		return ErrInvalidReason
	}

	item, err := s.store.GetItem(ctx, productID)
	if err != nil {
		return err
	}

	if movementType == MovementTypeStockOut && quantity > item.Quantity {
		return &InsufficientStockError{
			ProductID: productID,
			Available: item.Quantity,
			Requested: quantity,
		}
	}

	return nil
}
