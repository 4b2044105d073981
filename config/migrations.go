package config

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
	"p9e.in/pixcel/models"
)

func Migrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "20250812_create_tables",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&models.User{}, &models.Portfolio{}, &models.Service{}, &models.Quotation{})
			},
		},
		{
			ID: "20251020_add_quotation_city",
			Migrate: func(tx *gorm.DB) error {
				// Column exists on fresh installs via AutoMigrate; older
				// databases predate the city field on the quote form.
				return tx.Exec("ALTER TABLE quotations ADD COLUMN IF NOT EXISTS city varchar(100)").Error
			},
		},
	})

	return m.Migrate()
}
