// internal/domain/inventory/errors.go
package inventory

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantity indicates a zero or negative movement quantity.
var ErrInvalidQuantity = errors.New("inventory: quantity must be a positive integer")

// ErrInvalidReason indicates a reason code outside the set for the movement type.
var ErrInvalidReason = errors.New("inventory: reason code not valid for movement type")

// ErrProductNotFound indicates the product has no inventory record.
var ErrProductNotFound = errors.New("inventory: product not found")

// ErrUnknownProduct indicates a scanned barcode that resolves to no product.
var ErrUnknownProduct = errors.New("inventory: unknown product")

// InsufficientStockError is returned when an outbound movement requests more
// stock than is on hand. It carries the available quantity so callers can
// report it.
type InsufficientStockError struct {
	ProductID uint
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("inventory: insufficient stock for product %d: available %d, requested %d",
		e.ProductID, e.Available, e.Requested)
}

// IsInsufficientStock reports whether err is an InsufficientStockError
func IsInsufficientStock(err error) bool {
	var target *InsufficientStockError
	return errors.As(err, &target)
}
