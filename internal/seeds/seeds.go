package seeds

import (
	"context"
	"log"

	"github.com/Kepler-Interactive/CompAI/internal/frameworks"
)

// SeedAll populates every baseline table that is still empty.
func SeedAll(ctx context.Context, store frameworks.Store) error {
	res, err := frameworks.NewSeeder(store).Seed(ctx)
	if err != nil {
		return err
	}

	if res.Seeded {
		log.Printf("✅ %s (%d)", res.Message, res.Count)
	} else {
		log.Printf("⚠️ %s (%d), skipping", res.Message, res.Count)
	}
	return nil
}
