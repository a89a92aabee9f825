// internal/domain/inventory/batch.go
package inventory

import (
	"context"
)

// ReturnLine is one scanned product in a return batch
type ReturnLine struct {
	ProductID   uint `json:"product_id"`
	Quantity    int  `json:"quantity"`
	StockAtScan int  `json:"stock_at_scan"`
}

// ReturnBatch accumulates scanned products before a return is submitted.
// It is a plain value object owned by one request; the caller holds it and
// passes it to SubmitReturnBatch explicitly.
type ReturnBatch struct {
	Lines []ReturnLine `json:"lines"`
}

// NewReturnBatch creates an empty return batch
func NewReturnBatch() *ReturnBatch {
	return &ReturnBatch{}
}

// add appends a line or, if the product was already scanned, increments its
// quantity. One product never occupies two lines.
func (b *ReturnBatch) add(productID uint, quantity, stockAtScan int) {
	for i := range b.Lines {
		if b.Lines[i].ProductID == productID {
			b.Lines[i].Quantity += quantity
			return
		}
	}
	b.Lines = append(b.Lines, ReturnLine{
		ProductID:   productID,
		Quantity:    quantity,
		StockAtScan: stockAtScan,
	})
}

// IsEmpty reports whether the batch has no lines
func (b *ReturnBatch) IsEmpty() bool {
	return len(b.Lines) == 0
}

// ScanReturn adds a scanned product to the batch. The product must have an
// inventory record; an unknown product is rejected with ErrUnknownProduct and
// the batch is left unchanged.
func (s *Service) ScanReturn(ctx context.Context, batch *ReturnBatch, productID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	item, err := s.store.GetItem(ctx, productID)
	if err != nil {
		if err == ErrProductNotFound {
			return ErrUnknownProduct
		}
		return err
	}
	batch.add(productID, quantity, item.Quantity)
	return nil
}

// ReturnLineResult reports the outcome of one submitted return line
type ReturnLineResult struct {
	ProductID uint           `json:"product_id"`
	Success   bool           `json:"success"`
	Movement  *StockMovement `json:"movement,omitempty"`
	Error     string         `json:"error,omitempty"`
}

// BatchResult summarises a submitted return batch
type BatchResult struct {
	ReferenceNumber string             `json:"reference_number"`
	Results         []ReturnLineResult `json:"results"`
	Committed       int                `json:"committed"`
	Failed          int                `json:"failed"`
}

// SubmitReturnBatch commits each line of the batch as an independent
// stock_return movement sharing the given reference number. Commits are
// best-effort per line: a line that fails does not roll back lines already
// committed, and the failure is reported in its result entry.
func (s *Service) SubmitReturnBatch(ctx context.Context, batch *ReturnBatch, referenceNumber string, createdBy uint) *BatchResult {
	result := &BatchResult{
		ReferenceNumber: referenceNumber,
		Results:         make([]ReturnLineResult, 0, len(batch.Lines)),
	}

	for _, line := range batch.Lines {
		movement, err := s.Commit(ctx, CommitInput{
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			MovementType:    MovementTypeStockReturn,
			Reason:          ReasonReturn,
			ReferenceNumber: referenceNumber,
			CreatedBy:       createdBy,
		})
		if err != nil {
			result.Results = append(result.Results, ReturnLineResult{
				ProductID: line.ProductID,
				Success:   false,
				Error:     err.Error(),
			})
			result.Failed++
			continue
		}
		result.Results = append(result.Results, ReturnLineResult{
			ProductID: line.ProductID,
			Success:   true,
			Movement:  movement,
		})
		result.Committed++
	}

	return result
}
