package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 3)
	svc := NewService(store)
	ctx := context.Background()

	require.NoError(t, svc.Validate(ctx, 1, 2, MovementTypeStockOut, ReasonSale))
	require.NoError(t, svc.Validate(ctx, 1, 500, MovementTypeStockIn, ReasonPurchase))

	// No upper bound for returns either
	require.NoError(t, svc.Validate(ctx, 1, 500, MovementTypeStockReturn, ReasonReturn))

	err := svc.Validate(ctx, 1, 0, MovementTypeStockIn, ReasonPurchase)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	err = svc.Validate(ctx, 1, -4, MovementTypeStockIn, ReasonPurchase)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	err = svc.Validate(ctx, 1, 2, MovementTypeStockOut, ReasonInitialStock)
	require.ErrorIs(t, err, ErrInvalidReason)

	err = svc.Validate(ctx, 1, 2, MovementType("teleport"), ReasonOther)
	require.ErrorIs(t, err, ErrInvalidReason)

	err = svc.Validate(ctx, 1, 4, MovementTypeStockOut, ReasonSale)
	var insufficient *InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	require.Equal(t, 3, insufficient.Available)

	err = svc.Validate(ctx, 99, 1, MovementTypeStockIn, ReasonPurchase)
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestValidateHasNoSideEffects(t *testing.T) {
	store := newMemStore()
	store.seedItem(1, 3)
	svc := NewService(store)
	ctx := context.Background()

	_ = svc.Validate(ctx, 1, 4, MovementTypeStockOut, ReasonSale)
	_ = svc.Validate(ctx, 1, 2, MovementTypeStockOut, ReasonSale)

	qty, err := svc.GetStockLevel(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 3, qty)

	total, err := store.CountMovements(ctx, MovementFilter{})
	require.NoError(t, err)
	require.Zero(t, total)
}

func TestValidReasonSets(t *testing.T) {
	require.True(t, ValidReason(MovementTypeStockIn, ReasonInitialStock))
	require.True(t, ValidReason(MovementTypeStockOut, ReasonDamage))
	require.True(t, ValidReason(MovementTypeStockOut, ReasonExpired))
	require.True(t, ValidReason(MovementTypeStockReturn, ReasonReturn))

	require.False(t, ValidReason(MovementTypeStockIn, ReasonSale))
	require.False(t, ValidReason(MovementTypeStockIn, ReasonDamage))
	require.False(t, ValidReason(MovementTypeStockOut, ReasonInitialStock))
	require.False(t, ValidReason(MovementTypeStockOut, ReasonReturn))
	require.False(t, ValidReason(MovementType("unknown"), ReasonOther))
}
