package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommitStockIn(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 5)
	svc := NewService(store)
	ctx := context.Background()

	movement, err := svc.Commit(ctx, CommitInput{
		ProductID:    1,
		Quantity:     10,
		MovementType: MovementTypeStockIn,
		Reason:       ReasonPurchase,
		CreatedBy:    42,
	})
	require.NoError(t, err)
	require.Equal(t, 5, movement.PreviousStock)
	require.Equal(t, 15, movement.CurrentStock)
	require.Equal(t, 10, movement.Delta())
	require.NotZero(t, movement.ID)
	require.False(t, movement.CreatedAt.IsZero())

	qty, err := svc.GetStockLevel(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 15, qty)
}

func TestCommitStockOutInsufficient(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 3)
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Commit(ctx, CommitInput{
		ProductID:    1,
		Quantity:     5,
		MovementType: MovementTypeStockOut,
		Reason:       ReasonSale,
		CreatedBy:    42,
	})
	require.Error(t, err)

	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 3, insufficient.Available)
	require.Equal(t, 5, insufficient.Requested)

	// Quantity untouched, no ledger row written
	qty, err := svc.GetStockLevel(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 3, qty)
	total, err := store.CountMovements(ctx, MovementFilter{ProductID: 1})
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestCommitStockOut(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 10)
	svc := NewService(store)

	movement, err := svc.Commit(context.Background(), CommitInput{
		ProductID:    1,
		Quantity:     4,
		MovementType: MovementTypeStockOut,
		Reason:       ReasonSale,
		CreatedBy:    42,
	})
	require.NoError(t, err)
	require.Equal(t, 10, movement.PreviousStock)
	require.Equal(t, 6, movement.CurrentStock)
	require.Equal(t, -4, movement.Delta())
}

func TestCommitRejectsInvalidInput(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 10)
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Commit(ctx, CommitInput{
		ProductID: 1, Quantity: 0,
		MovementType: MovementTypeStockIn, Reason: ReasonPurchase,
	})
	require.ErrorIs(t, err, ErrInvalidQuantity)

	// sale is not an inbound reason
	_, err = svc.Commit(ctx, CommitInput{
		ProductID: 1, Quantity: 1,
		MovementType: MovementTypeStockIn, Reason: ReasonSale,
	})
	require.ErrorIs(t, err, ErrInvalidReason)

	_, err = svc.Commit(ctx, CommitInput{
		ProductID: 99, Quantity: 1,
		MovementType: MovementTypeStockIn, Reason: ReasonPurchase,
	})
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestCommitRollsBackOnLedgerFailure(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 5)
	store.appendErr = errors.New("disk full")
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Commit(ctx, CommitInput{
		ProductID:    1,
		Quantity:     10,
		MovementType: MovementTypeStockIn,
		Reason:       ReasonPurchase,
	})
	require.Error(t, err)

	// Atomicity: quantity change was rolled back with the failed append
	qty, err := svc.GetStockLevel(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 5, qty)
}

func TestCreateItemRecordsInitialStock(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, 7, 1, 42)
	require.NoError(t, err)
	require.Equal(t, 1, item.Quantity)

	history, err := svc.QueryMovements(ctx, HistoryRequest{Filter: MovementFilter{ProductID: 7}})
	require.NoError(t, err)
	require.Len(t, history.Movements, 1)
	require.Equal(t, ReasonInitialStock, history.Movements[0].Reason)
	require.Equal(t, 0, history.Movements[0].PreviousStock)
	require.Equal(t, 1, history.Movements[0].CurrentStock)
}

func TestCreateItemZeroQuantityHasNoMovement(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, 7, 0, 42)
	require.NoError(t, err)
	require.Equal(t, 0, item.Quantity)

	total, err := store.CountMovements(ctx, MovementFilter{ProductID: 7})
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestSetItemStatus(t *testing.T) {
	store := newMemStore()
	store.seedItem(3, 8)
	svc := NewService(store)
	ctx := context.Background()

	require.NoError(t, svc.SetItemStatus(ctx, 3, ItemStatusUnavailable))

	item, err := svc.GetItem(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, ItemStatusUnavailable, item.Status)
	require.Equal(t, 8, item.Quantity)
}
