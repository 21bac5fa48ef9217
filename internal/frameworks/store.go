package frameworks

import (
	"context"

	"gorm.io/gorm"
)

// Store is the persistence contract the seeder needs.
type Store interface {
	Count(ctx context.Context) (int64, error)
	// CreateMany inserts all records in one operation and reports how many were written.
	CreateMany(ctx context.Context, records []Framework) (int64, error)
}

// VisibleLister lists frameworks flagged for display.
type VisibleLister interface {
	ListVisible(ctx context.Context) ([]Framework, error)
}

// GormStore implements Store and VisibleLister on Postgres via gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(d *gorm.DB) *GormStore {
	return &GormStore{db: d}
}

func (s *GormStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&Framework{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// CreateMany issues a single multi-row INSERT. Atomicity is whatever Postgres
// gives that statement.
func (s *GormStore) CreateMany(ctx context.Context, records []Framework) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}
	res := s.db.WithContext(ctx).Create(&records)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *GormStore) ListVisible(ctx context.Context) ([]Framework, error) {
	var out []Framework
	err := s.db.WithContext(ctx).
		Where("visible = ?", true).
		Order("name ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
