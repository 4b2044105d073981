package handlers

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"p9e.in/pixcel/config"
	"p9e.in/pixcel/models"
)

// setupTestDB points the package-level config.DB at an isolated in-memory
// sqlite database for the duration of one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Portfolio{}, &models.Service{}, &models.Quotation{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}
