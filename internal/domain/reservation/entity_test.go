//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"ticketboss/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeatCount(t *testing.T) {
	testCases := []struct {
		name  string
		value int32
		errIs error
	}{
		{name: "minimum valid seats", value: 1},
		{name: "maximum valid seats", value: 10},
		{name: "zero seats", value: 0, errIs: reservation.ErrInvalidSeatCount},
		{name: "above maximum", value: 11, errIs: reservation.ErrInvalidSeatCount},
		{name: "negative seats", value: -3, errIs: reservation.ErrInvalidSeatCount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := reservation.NewSeatCount(tc.value)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.value, sc.Value())
		})
	}
}

func TestPartnerID(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		p, err := reservation.NewPartnerID("  partner-7  ")
		require.NoError(t, err)
		assert.Equal(t, "partner-7", p.String())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := reservation.NewPartnerID("")
		assert.ErrorIs(t, err, reservation.ErrEmptyPartnerID)
	})

	t.Run("rejects whitespace only", func(t *testing.T) {
		_, err := reservation.NewPartnerID("   ")
		assert.ErrorIs(t, err, reservation.ErrEmptyPartnerID)
	})
}

func newConfirmed(t *testing.T) *reservation.Reservation {
	t.Helper()
	partner, err := reservation.NewPartnerID("p1")
	require.NoError(t, err)
	seats, err := reservation.NewSeatCount(3)
	require.NoError(t, err)
	return reservation.NewReservation("node-meetup-2025", partner, seats, time.Now())
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual := newConfirmed(t)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, reservation.StatusConfirmed, actual.Status())
		assert.Equal(t, int32(3), actual.Seats().Value())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Nil(t, actual.CancelledAt())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		seen := make(map[uuid.UUID]bool)
		for range 100 {
			r := newConfirmed(t)
			require.False(t, seen[r.ID()], "duplicate reservation id generated")
			seen[r.ID()] = true
		}
	})

	t.Run("cancel sets status and timestamp once", func(t *testing.T) {
		r := newConfirmed(t)
		cancelTime := time.Now().Add(time.Hour)

		require.NoError(t, r.Cancel(cancelTime))

		assert.True(t, r.IsCancelled())
		require.NotNil(t, r.CancelledAt())
		assert.Equal(t, cancelTime, *r.CancelledAt())
	})

	t.Run("second cancel is rejected", func(t *testing.T) {
		r := newConfirmed(t)
		require.NoError(t, r.Cancel(time.Now()))
		firstCancelledAt := *r.CancelledAt()

		err := r.Cancel(time.Now().Add(time.Minute))

		assert.ErrorIs(t, err, reservation.ErrAlreadyCancelled)
		assert.Equal(t, firstCancelledAt, *r.CancelledAt(), "cancelled_at must be set exactly once")
	})
}

func TestReconstructReservation(t *testing.T) {
	t.Run("rejects unknown status", func(t *testing.T) {
		partner, err := reservation.NewPartnerID("p1")
		require.NoError(t, err)
		seats, err := reservation.NewSeatCount(2)
		require.NoError(t, err)

		_, err = reservation.ReconstructReservation(uuid.New(), "e", partner, seats, reservation.Status("pending"), time.Now(), nil)
		assert.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}
