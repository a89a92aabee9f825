// internal/domain/inventory/entity.go
package inventory

import (
	"time"
)

// ItemStatus represents the availability of an inventory item
type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusUnavailable ItemStatus = "unavailable"
)

// MovementType represents the type of stock movement
type MovementType string

const (
	MovementTypeStockIn     MovementType = "stock_in"
	MovementTypeStockOut    MovementType = "stock_out"
	MovementTypeStockReturn MovementType = "stock_return"
)

// IsInbound reports whether the movement adds stock
func (t MovementType) IsInbound() bool {
	return t == MovementTypeStockIn || t == MovementTypeStockReturn
}

// IsValid reports whether the movement type is one of the known types
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeStockIn, MovementTypeStockOut, MovementTypeStockReturn:
		return true
	}
	return false
}

// ReasonCode represents the justification for a stock movement
type ReasonCode string

const (
	ReasonInitialStock ReasonCode = "initial_stock"
	ReasonPurchase     ReasonCode = "purchase"
	ReasonAdjustment   ReasonCode = "adjustment"
	ReasonTransfer     ReasonCode = "transfer"
	ReasonReturn       ReasonCode = "return"
	ReasonSale         ReasonCode = "sale"
	ReasonDamage       ReasonCode = "damage"
	ReasonExpired      ReasonCode = "expired"
	ReasonOther        ReasonCode = "other"
)

// reasonSets maps each movement type to its allowed reason codes. Returns
// share the inbound set since a return is an inbound movement.
var reasonSets = map[MovementType]map[ReasonCode]bool{
	MovementTypeStockIn: {
		ReasonInitialStock: true,
		ReasonPurchase:     true,
		ReasonAdjustment:   true,
		ReasonTransfer:     true,
		ReasonReturn:       true,
		ReasonOther:        true,
	},
	MovementTypeStockOut: {
		ReasonSale:       true,
		ReasonAdjustment: true,
		ReasonTransfer:   true,
		ReasonDamage:     true,
		ReasonExpired:    true,
		ReasonOther:      true,
	},
	MovementTypeStockReturn: {
		ReasonInitialStock: true,
		ReasonPurchase:     true,
		ReasonAdjustment:   true,
		ReasonTransfer:     true,
		ReasonReturn:       true,
		ReasonOther:        true,
	},
}

// ValidReason reports whether the reason code belongs to the set for the
// given movement type
func ValidReason(movementType MovementType, reason ReasonCode) bool {
	set, ok := reasonSets[movementType]
	if !ok {
		return false
	}
	return set[reason]
}

// InventoryItem holds the current on-hand quantity for a product. The
// quantity is mutated only by Service.Commit.
type InventoryItem struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	ProductID uint       `gorm:"uniqueIndex;not null" json:"product_id"`
	Quantity  int        `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	Status    ItemStatus `gorm:"size:20;default:'available'" json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relationships
	Movements []StockMovement `gorm:"foreignKey:ProductID;references:ProductID" json:"movements,omitempty"`
}

// StockMovement is an append-only ledger row recording one quantity change.
// Once written it is never updated or deleted.
type StockMovement struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	ProductID       uint         `gorm:"not null;index" json:"product_id"`
	MovementType    MovementType `gorm:"not null;size:20;index" json:"movement_type"`
	Reason          ReasonCode   `gorm:"not null;size:30" json:"reason"`
	Quantity        int          `gorm:"not null" json:"quantity"`
	PreviousStock   int          `gorm:"not null" json:"previous_stock"`
	CurrentStock    int          `gorm:"not null" json:"current_stock"`
	ReferenceNumber string       `gorm:"size:100;index" json:"reference_number,omitempty"`
	Notes           string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy       uint         `gorm:"not null;index" json:"created_by"`
	CreatedAt       time.Time    `gorm:"index" json:"created_at"`
}

// Delta returns the signed quantity change recorded by the movement
func (m *StockMovement) Delta() int {
	if m.MovementType.IsInbound() {
		return m.Quantity
	}
	return -m.Quantity
}

// TableName overrides
func (InventoryItem) TableName() string { return "inventory_items" }
func (StockMovement) TableName() string { return "stock_movements" }

// IsOutOfStock reports whether the item has no stock on hand
func (i *InventoryItem) IsOutOfStock() bool {
	return i.Quantity <= 0
}
