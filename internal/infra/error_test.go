//go:build unit

package infra_test

import (
	"testing"

	"ticketboss/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		explicit []infra.RepositoryErrorKind
		expected infra.RepositoryErrorKind
	}{
		{name: "no rows becomes not found", err: pgx.ErrNoRows, expected: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, expected: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, expected: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, expected: infra.KindCheckViolated},
		{name: "anything else is a db failure", err: assert.AnError, expected: infra.KindDBFailure},
		{
			name:     "explicit kind wins over classification",
			err:      pgx.ErrNoRows,
			explicit: []infra.RepositoryErrorKind{infra.KindDBFailure},
			expected: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("query failed", tc.err, tc.explicit...)

			assert.True(t, infra.IsKind(err, tc.expected))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestIsKind(t *testing.T) {
	t.Run("plain errors carry no kind", func(t *testing.T) {
		assert.False(t, infra.IsKind(assert.AnError, infra.KindDBFailure))
	})
}
