package db

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Kepler-Interactive/CompAI/internal/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewLogger returns the gorm logger used by the server: SQL with timings,
// slow queries flagged over 100ms.
func NewLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             100 * time.Millisecond,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)
}

// Open dials Postgres through the pgx stdlib driver and hands the pool to gorm.
func Open(cfg config.Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	d, err := FromConn(sqlDB, NewLogger())
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return d, nil
}

// FromConn wraps an existing *sql.DB in a gorm handle using the postgres dialect.
func FromConn(conn *sql.DB, lg logger.Interface) (*gorm.DB, error) {
	d, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: lg,
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return d, nil
}

// Connect opens the database and exits the process on failure.
func Connect(cfg config.Config) *gorm.DB {
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	d, err := Open(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	log.Println("[db] Connected to database")
	return d
}

// Close releases the pool behind d.
func Close(d *gorm.DB) error {
	sqlDB, err := d.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	return sqlDB.Close()
}
