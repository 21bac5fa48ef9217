package frameworks

import (
	"log"

	"github.com/Kepler-Interactive/CompAI/internal/db"
	"gorm.io/gorm"
)

func Init(d *gorm.DB) {
	if err := db.EnsureSchema(d, "framework_editor"); err != nil {
		log.Fatal("Failed to ensure schema framework_editor: ", err)
	}

	if err := d.AutoMigrate(&Framework{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
