package frameworks

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestDescribeStoreError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "constraint violation",
			err:  &SeedError{Phase: PhaseInsert, Err: &pgconn.PgError{Code: "23505", ConstraintName: "idx_frameworks_name"}},
			want: " (sqlstate=23505 constraint=idx_frameworks_name)",
		},
		{
			name: "wrapped without constraint",
			err:  &SeedError{Phase: PhaseCount, Err: fmt.Errorf("count: %w", &pgconn.PgError{Code: "42P01"})},
			want: " (sqlstate=42P01)",
		},
		{
			name: "not a postgres error",
			err:  &SeedError{Phase: PhaseCount, Err: errors.New("connection refused")},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := describeStoreError(tc.err); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

// TestFailureDetails_PgError verifies the wire details stay the driver's message.
func TestFailureDetails_PgError(t *testing.T) {
	pgErr := &pgconn.PgError{Severity: "ERROR", Code: "23505", Message: "duplicate key value violates unique constraint"}
	err := &SeedError{Phase: PhaseInsert, Err: pgErr}

	if got := failureDetails(err); got != pgErr.Error() {
		t.Errorf("expected %q, got %q", pgErr.Error(), got)
	}
}
