package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Kepler-Interactive/CompAI/internal/config"
	"github.com/Kepler-Interactive/CompAI/internal/db"
	"github.com/Kepler-Interactive/CompAI/internal/frameworks"
	"github.com/Kepler-Interactive/CompAI/internal/seeds"
	"github.com/joho/godotenv"
)

var (
	dsn     = flag.String("dsn", "", "Postgres DSN (default: env DATABASE_URL)")
	dryRun  = flag.Bool("dry-run", false, "Print the baseline dataset; no DB access")
	timeout = flag.Duration("timeout", 30*time.Second, "Overall deadline for the seed run")
)

func main() {
	_ = godotenv.Load(".env.local")
	flag.Parse()

	if *dryRun {
		printDataset()
		return
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}
	if *dsn != "" {
		cfg.DatabaseURL = *dsn
	}

	d := db.Connect(cfg)
	defer db.Close(d)
	frameworks.Init(d)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := seeds.SeedAll(ctx, frameworks.NewGormStore(d)); err != nil {
		log.Printf("❌ Seeding failed: %v", err)
		cancel()
		db.Close(d)
		os.Exit(1)
	}
}

func printDataset() {
	ds, err := frameworks.LoadDataset()
	if err != nil {
		log.Fatalf("❌ Dataset: %v", err)
	}
	fmt.Printf("Frameworks dataset v%d (%d entries)\n", ds.Version, len(ds.Frameworks))
	for _, e := range ds.Frameworks {
		fmt.Printf("  %-14s %-9s %s\n", e.Name, e.Version, e.Description)
	}
	fmt.Println("Dry run complete. No changes made.")
}
