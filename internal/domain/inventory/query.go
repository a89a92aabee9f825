// internal/domain/inventory/query.go
package inventory

import (
	"context"
)

// HistoryRequest represents movement history query parameters
type HistoryRequest struct {
	Page     int    `form:"page,default=1"`
	PageSize int    `form:"page_size,default=20"`
	Filter   MovementFilter
}

// Pagination represents pagination information for a history page. From and
// To are the 1-based display indices of the first and last record on the
// page; both are zero for an empty result.
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
	From     int   `json:"from"`
	To       int   `json:"to"`
}

// MovementHistory represents one page of ledger records
type MovementHistory struct {
	Movements  []StockMovement `json:"movements"`
	Pagination Pagination      `json:"pagination"`
}

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// QueryMovements returns a filtered, paginated view of the ledger, newest
// first. It is a pure read: calling it twice with no intervening commit
// returns identical results.
func (s *Service) QueryMovements(ctx context.Context, req HistoryRequest) (*MovementHistory, error) {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	total, err := s.store.CountMovements(ctx, req.Filter)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize
	movements, err := s.store.ListMovements(ctx, req.Filter, offset, pageSize)
	if err != nil {
		return nil, err
	}

	lastPage := int((total + int64(pageSize) - 1) / int64(pageSize))
	if lastPage < 1 {
		lastPage = 1
	}

	from, to := 0, 0
	if len(movements) > 0 {
		from = offset + 1
		to = offset + len(movements)
	}

	return &MovementHistory{
		Movements: movements,
		Pagination: Pagination{
			Page:     page,
			PageSize: pageSize,
			Total:    total,
			LastPage: lastPage,
			From:     from,
			To:       to,
		},
	}, nil
}
