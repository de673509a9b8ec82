//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"ticketboss/internal/infra"
	"ticketboss/internal/pkg/clock"
	"ticketboss/internal/usecase/queries"
	queriesmock "ticketboss/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newEventQueriesFixture(t *testing.T) (*queriesmock.MockEventReadStore, queries.EventQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	readStore := queriesmock.NewMockEventReadStore(ctrl)
	return readStore, queries.NewEventQueries(readStore, clock.NewMockClock(fixedNow))
}

func TestEventQueries_GetSummary(t *testing.T) {
	t.Run("passes the read model through", func(t *testing.T) {
		readStore, sut := newEventQueriesFixture(t)
		expected := &queries.EventSummary{
			EventID:          "node-meetup-2025",
			Name:             "Node Meetup 2025",
			TotalSeats:       10,
			AvailableSeats:   7,
			ReservationCount: 1,
			Version:          1,
		}
		readStore.EXPECT().Summary(gomock.Any(), "node-meetup-2025").Return(expected, nil)

		actual, err := sut.GetSummary(context.Background(), "node-meetup-2025")

		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("maps a missing row to event not found", func(t *testing.T) {
		readStore, sut := newEventQueriesFixture(t)
		readStore.EXPECT().Summary(gomock.Any(), "ghost-event").Return(nil, infra.WrapRepoErr("no rows", pgx.ErrNoRows))

		_, err := sut.GetSummary(context.Background(), "ghost-event")

		assert.ErrorIs(t, err, queries.ErrEventNotFound)
	})
}

func TestEventQueries_CheckHealth(t *testing.T) {
	t.Run("reports connected when the store answers", func(t *testing.T) {
		readStore, sut := newEventQueriesFixture(t)
		readStore.EXPECT().Ping(gomock.Any()).Return(nil)

		status := sut.CheckHealth(context.Background())

		assert.True(t, status.Healthy)
		assert.Equal(t, "connected", status.Database)
		assert.Equal(t, fixedNow, status.CheckedAt)
	})

	t.Run("reports disconnected when the ping fails", func(t *testing.T) {
		readStore, sut := newEventQueriesFixture(t)
		readStore.EXPECT().Ping(gomock.Any()).Return(assert.AnError)

		status := sut.CheckHealth(context.Background())

		assert.False(t, status.Healthy)
		assert.Equal(t, "disconnected", status.Database)
	})
}
