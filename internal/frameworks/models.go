package frameworks

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Framework is a compliance or security standard offered for selection elsewhere in the app.
type Framework struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null;index:idx_frameworks_name" json:"name"`
	Description string    `gorm:"not null" json:"description"`
	Version     string    `gorm:"not null" json:"version"`
	Visible     bool      `gorm:"not null" json:"visible"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Framework) TableName() string {
	return "framework_editor.frameworks"
}

func (f *Framework) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
