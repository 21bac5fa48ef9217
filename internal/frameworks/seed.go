package frameworks

import (
	"context"
	"errors"
	"fmt"
	"log"
)

const (
	MessageAlreadyExist = "Frameworks already exist"
	MessageSeeded       = "Frameworks successfully seeded!"

	FailureMessage      = "Failed to seed frameworks"
	UnknownErrorDetails = "Unknown error"
)

// ErrSeedFailed matches every *SeedError via errors.Is.
var ErrSeedFailed = errors.New("failed to seed frameworks")

// Phase names the store call that failed.
type Phase string

const (
	PhaseCount  Phase = "count"
	PhaseInsert Phase = "insert"
)

type SeedError struct {
	Phase Phase
	Err   error
}

func (e *SeedError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("seed frameworks (%s)", e.Phase)
	}
	return fmt.Sprintf("seed frameworks (%s): %v", e.Phase, e.Err)
}

func (e *SeedError) Unwrap() error { return e.Err }

func (e *SeedError) Is(target error) bool { return target == ErrSeedFailed }

// Details is the text reported to callers in the failure payload.
func (e *SeedError) Details() string {
	if e.Err == nil || e.Err.Error() == "" {
		return UnknownErrorDetails
	}
	return e.Err.Error()
}

// Result is a successful seed outcome. Count is the existing row count when
// Seeded is false and the number of inserted rows when it is true.
type Result struct {
	Message string
	Count   int64
	Seeded  bool
}

// Seeder populates an empty frameworks table with the baseline dataset.
type Seeder struct {
	store   Store
	dataset Dataset
}

var baseline = mustLoadDataset()

func NewSeeder(store Store) *Seeder {
	return &Seeder{store: store, dataset: baseline}
}

// Seed inserts the baseline dataset only if the table holds no rows. It does
// not guard against two callers both observing an empty table.
func (s *Seeder) Seed(ctx context.Context) (Result, error) {
	existing, err := s.store.Count(ctx)
	if err != nil {
		return Result{}, &SeedError{Phase: PhaseCount, Err: err}
	}

	if existing > 0 {
		log.Printf("[frameworks] %d frameworks present, skipping seed", existing)
		return Result{Message: MessageAlreadyExist, Count: existing}, nil
	}

	inserted, err := s.store.CreateMany(ctx, s.dataset.Records())
	if err != nil {
		return Result{}, &SeedError{Phase: PhaseInsert, Err: err}
	}

	log.Printf("[frameworks] seeded %d frameworks (dataset v%d)", inserted, s.dataset.Version)
	return Result{Message: MessageSeeded, Count: inserted, Seeded: true}, nil
}
