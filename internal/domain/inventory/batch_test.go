package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanReturnAccumulates(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 4)
	store.seedItem(2, 0)
	svc := NewService(store)
	ctx := context.Background()

	batch := NewReturnBatch()
	require.True(t, batch.IsEmpty())

	require.NoError(t, svc.ScanReturn(ctx, batch, 1, 1))
	require.NoError(t, svc.ScanReturn(ctx, batch, 2, 2))
	require.NoError(t, svc.ScanReturn(ctx, batch, 1, 1))

	// Re-scanning a product increments its line, it never duplicates it
	require.Len(t, batch.Lines, 2)
	require.Equal(t, 2, batch.Lines[0].Quantity)
	require.Equal(t, 4, batch.Lines[0].StockAtScan)
	require.Equal(t, 2, batch.Lines[1].Quantity)
}

func TestScanReturnUnknownProduct(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 4)
	svc := NewService(store)
	ctx := context.Background()

	batch := NewReturnBatch()
	require.NoError(t, svc.ScanReturn(ctx, batch, 1, 1))

	err := svc.ScanReturn(ctx, batch, 999, 1)
	require.ErrorIs(t, err, ErrUnknownProduct)

	err = svc.ScanReturn(ctx, batch, 1, 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	// Rejected scans leave the batch unchanged
	require.Len(t, batch.Lines, 1)
	require.Equal(t, 1, batch.Lines[0].Quantity)
}

func TestSubmitReturnBatch(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 10)
	store.seedItem(2, 0)
	svc := NewService(store)
	ctx := context.Background()

	batch := NewReturnBatch()
	require.NoError(t, svc.ScanReturn(ctx, batch, 1, 2))
	require.NoError(t, svc.ScanReturn(ctx, batch, 2, 3))

	result := svc.SubmitReturnBatch(ctx, batch, "RET-2024-001", 7)
	require.Equal(t, 2, result.Committed)
	require.Zero(t, result.Failed)

	for _, lineResult := range result.Results {
		require.True(t, lineResult.Success)
		require.Equal(t, "RET-2024-001", lineResult.Movement.ReferenceNumber)
		require.Equal(t, MovementTypeStockReturn, lineResult.Movement.MovementType)
	}

	qty, err := svc.GetStockLevel(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 12, qty)
	qty, err = svc.GetStockLevel(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, 3, qty)
}

func TestSubmitReturnBatchPartialFailure(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 0)
	store.seedItem(3, 0)
	svc := NewService(store)
	ctx := context.Background()

	// Product 2 disappeared between scan and submit
	batch := &ReturnBatch{Lines: []ReturnLine{
		{ProductID: 1, Quantity: 1},
		{ProductID: 2, Quantity: 1},
		{ProductID: 3, Quantity: 2},
	}}

	result := svc.SubmitReturnBatch(ctx, batch, "RET-2024-002", 7)
	require.Equal(t, 2, result.Committed)
	require.Equal(t, 1, result.Failed)

	// Successful lines stay committed, each under the shared reference
	require.True(t, result.Results[0].Success)
	require.False(t, result.Results[1].Success)
	require.NotEmpty(t, result.Results[1].Error)
	require.True(t, result.Results[2].Success)

	qty, err := svc.GetStockLevel(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, qty)
	qty, err = svc.GetStockLevel(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 2, qty)

	history, err := svc.QueryMovements(ctx, HistoryRequest{})
	require.NoError(t, err)
	require.Len(t, history.Movements, 2)
	for _, m := range history.Movements {
		require.Equal(t, "RET-2024-002", m.ReferenceNumber)
	}
}
