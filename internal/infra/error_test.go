//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"appointment-scheduler/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindConflict},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindConflict},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed", tc.err)

			assert.True(t, infra.IsKind(err, tc.want))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestIsKindOnForeignErrors(t *testing.T) {
	assert.False(t, infra.IsKind(errors.New("x"), infra.KindNotFound))
	assert.False(t, infra.IsKind(nil, infra.KindNotFound))
	assert.True(t, infra.IsKind(fmt.Errorf("outer: %w", infra.NewRepoErr(infra.KindNotFound, "gone")), infra.KindNotFound))
}
