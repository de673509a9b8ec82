//go:build unit

package inventory_test

import (
	"testing"
	"time"

	"ticketboss/internal/domain/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reconstruct(t *testing.T, total, available, version int32) *inventory.EventInventory {
	t.Helper()
	inv, err := inventory.ReconstructEventInventory("node-meetup-2025", "Node Meetup 2025", total, available, version, time.Now())
	require.NoError(t, err)
	return inv
}

func TestReconstructEventInventory(t *testing.T) {
	t.Run("rejects available above capacity", func(t *testing.T) {
		_, err := inventory.ReconstructEventInventory("e", "n", 10, 11, 0, time.Now())
		assert.ErrorIs(t, err, inventory.ErrCorruptInventory)
	})

	t.Run("rejects negative available", func(t *testing.T) {
		_, err := inventory.ReconstructEventInventory("e", "n", 10, -1, 0, time.Now())
		assert.ErrorIs(t, err, inventory.ErrCorruptInventory)
	})

	t.Run("accepts boundary values", func(t *testing.T) {
		for _, available := range []int32{0, 10} {
			_, err := inventory.ReconstructEventInventory("e", "n", 10, available, 3, time.Now())
			assert.NoError(t, err)
		}
	})
}

func TestReserve(t *testing.T) {
	testCases := []struct {
		name      string
		available int32
		seats     int32
		errIs     error
	}{
		{name: "takes exactly the remaining seats", available: 3, seats: 3},
		{name: "takes part of the pool", available: 10, seats: 4},
		{name: "fails when pool is short", available: 2, seats: 3, errIs: inventory.ErrInsufficientSeats},
		{name: "fails on empty pool", available: 0, seats: 1, errIs: inventory.ErrInsufficientSeats},
		{name: "rejects zero seats", available: 10, seats: 0, errIs: inventory.ErrInvalidSeatDelta},
		{name: "rejects negative seats", available: 10, seats: -2, errIs: inventory.ErrInvalidSeatDelta},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			inv := reconstruct(t, 10, tc.available, 5)

			err := inv.Reserve(tc.seats)

			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, tc.available, inv.AvailableSeats(), "failed reserve must not mutate")
				assert.Equal(t, int32(5), inv.Version(), "failed reserve must not bump version")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.available-tc.seats, inv.AvailableSeats())
			assert.Equal(t, int32(6), inv.Version())
		})
	}
}

func TestRelease(t *testing.T) {
	t.Run("returns seats and bumps version", func(t *testing.T) {
		inv := reconstruct(t, 10, 7, 1)

		require.NoError(t, inv.Release(3))

		assert.Equal(t, int32(10), inv.AvailableSeats())
		assert.Equal(t, int32(2), inv.Version())
	})

	t.Run("never exceeds capacity", func(t *testing.T) {
		inv := reconstruct(t, 10, 8, 1)

		err := inv.Release(3)

		require.ErrorIs(t, err, inventory.ErrCapacityExceeded)
		assert.Equal(t, int32(8), inv.AvailableSeats())
		assert.Equal(t, int32(1), inv.Version())
	})

	t.Run("rejects non-positive delta", func(t *testing.T) {
		inv := reconstruct(t, 10, 5, 1)
		assert.ErrorIs(t, inv.Release(0), inventory.ErrInvalidSeatDelta)
	})
}

func TestVersionMonotonicity(t *testing.T) {
	inv := reconstruct(t, 10, 10, 0)

	require.NoError(t, inv.Reserve(4))
	require.NoError(t, inv.Reserve(2))
	require.NoError(t, inv.Release(4))

	assert.Equal(t, int32(3), inv.Version())
	assert.Equal(t, int32(8), inv.AvailableSeats())
}
