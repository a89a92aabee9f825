package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func seedHistory(t *testing.T) (*memStore, *Service) {
	t.Helper()
	store := newMemStore()
	store.seedItem(1, 0)
	store.seedItem(2, 0)
	svc := NewService(store)
	ctx := context.Background()

	commits := []CommitInput{
		{ProductID: 1, Quantity: 10, MovementType: MovementTypeStockIn, Reason: ReasonPurchase, CreatedBy: 1},
		{ProductID: 2, Quantity: 20, MovementType: MovementTypeStockIn, Reason: ReasonPurchase, CreatedBy: 2},
		{ProductID: 1, Quantity: 3, MovementType: MovementTypeStockOut, Reason: ReasonSale, CreatedBy: 2},
		{ProductID: 1, Quantity: 1, MovementType: MovementTypeStockReturn, Reason: ReasonReturn, CreatedBy: 1},
		{ProductID: 2, Quantity: 5, MovementType: MovementTypeStockOut, Reason: ReasonDamage, CreatedBy: 1},
	}
	for _, input := range commits {
		_, err := svc.Commit(ctx, input)
		require.NoError(t, err)
	}

	// Spread timestamps one minute apart so date filters have edges to hit
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := range store.movements {
		store.movements[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
	}
	return store, svc
}

func TestQueryMovementsNewestFirst(t *testing.T) {
	_, svc := seedHistory(t)

	history, err := svc.QueryMovements(context.Background(), HistoryRequest{})
	require.NoError(t, err)
	require.Len(t, history.Movements, 5)
	for i := 1; i < len(history.Movements); i++ {
		require.False(t, history.Movements[i].CreatedAt.After(history.Movements[i-1].CreatedAt))
	}
	require.Equal(t, int64(5), history.Pagination.Total)
	require.Equal(t, 1, history.Pagination.Page)
	require.Equal(t, 1, history.Pagination.LastPage)
	require.Equal(t, 1, history.Pagination.From)
	require.Equal(t, 5, history.Pagination.To)
}

func TestQueryMovementsPagination(t *testing.T) {
	_, svc := seedHistory(t)
	ctx := context.Background()

	page1, err := svc.QueryMovements(ctx, HistoryRequest{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page1.Movements, 2)
	require.Equal(t, 3, page1.Pagination.LastPage)
	require.Equal(t, 1, page1.Pagination.From)
	require.Equal(t, 2, page1.Pagination.To)

	page3, err := svc.QueryMovements(ctx, HistoryRequest{Page: 3, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page3.Movements, 1)
	require.Equal(t, 5, page3.Pagination.From)
	require.Equal(t, 5, page3.Pagination.To)

	// Pages never overlap
	require.NotEqual(t, page1.Movements[0].ID, page3.Movements[0].ID)
}

func TestQueryMovementsFilters(t *testing.T) {
	_, svc := seedHistory(t)
	ctx := context.Background()

	byProduct, err := svc.QueryMovements(ctx, HistoryRequest{Filter: MovementFilter{ProductID: 1}})
	require.NoError(t, err)
	require.Equal(t, int64(3), byProduct.Pagination.Total)
	for _, m := range byProduct.Movements {
		require.Equal(t, uint(1), m.ProductID)
	}

	byType, err := svc.QueryMovements(ctx, HistoryRequest{Filter: MovementFilter{MovementType: MovementTypeStockOut}})
	require.NoError(t, err)
	require.Equal(t, int64(2), byType.Pagination.Total)

	byUser, err := svc.QueryMovements(ctx, HistoryRequest{Filter: MovementFilter{CreatedBy: 2}})
	require.NoError(t, err)
	require.Equal(t, int64(2), byUser.Pagination.Total)

	combined, err := svc.QueryMovements(ctx, HistoryRequest{
		Filter: MovementFilter{ProductID: 1, MovementType: MovementTypeStockOut, CreatedBy: 2},
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), combined.Pagination.Total)
}

func TestQueryMovementsDateRange(t *testing.T) {
	_, svc := seedHistory(t)
	ctx := context.Background()

	// Inclusive window covering the middle three rows
	from := time.Date(2024, 3, 1, 9, 1, 0, 0, time.UTC)
	to := time.Date(2024, 3, 1, 9, 3, 0, 0, time.UTC)
	window, err := svc.QueryMovements(ctx, HistoryRequest{Filter: MovementFilter{From: &from, To: &to}})
	require.NoError(t, err)
	require.Equal(t, int64(3), window.Pagination.Total)

	// Range excluding everything returns an empty page, total zero
	farFrom := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	farTo := time.Date(2030, 12, 31, 0, 0, 0, 0, time.UTC)
	empty, err := svc.QueryMovements(ctx, HistoryRequest{
		Filter: MovementFilter{MovementType: MovementTypeStockOut, From: &farFrom, To: &farTo},
	})
	require.NoError(t, err)
	require.Empty(t, empty.Movements)
	require.Zero(t, empty.Pagination.Total)
	require.Zero(t, empty.Pagination.From)
	require.Zero(t, empty.Pagination.To)
}

func TestQueryMovementsIdempotentRead(t *testing.T) {
	_, svc := seedHistory(t)
	ctx := context.Background()

	first, err := svc.QueryMovements(ctx, HistoryRequest{Filter: MovementFilter{ProductID: 1}})
	require.NoError(t, err)
	second, err := svc.QueryMovements(ctx, HistoryRequest{Filter: MovementFilter{ProductID: 1}})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMovementRoundTrip(t *testing.T) {
	store := newMemStore()
	store.seedItem(9, 2)
	svc := NewService(store)
	ctx := context.Background()

	committed, err := svc.Commit(ctx, CommitInput{
		ProductID:    9,
		Quantity:     6,
		MovementType: MovementTypeStockIn,
		Reason:       ReasonTransfer,
		Notes:        "from overflow rack",
		CreatedBy:    5,
	})
	require.NoError(t, err)

	history, err := svc.QueryMovements(ctx, HistoryRequest{Filter: MovementFilter{ProductID: 9}})
	require.NoError(t, err)
	require.Len(t, history.Movements, 1)

	got := history.Movements[0]
	require.Equal(t, committed.ID, got.ID)
	require.Equal(t, committed.Notes, got.Notes)
	// Snapshots internally consistent with the signed delta
	require.Equal(t, got.CurrentStock-got.PreviousStock, got.Delta())
}
