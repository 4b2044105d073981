package config

import (
	"errors"
	"log"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"p9e.in/pixcel/models"
)

// RunAllSeeding runs all seeding operations in the correct order
func RunAllSeeding() error {
	log.Println("=== Starting Database Seeding ===")

	log.Println("\n[1/2] Seeding Admin User...")
	if err := SeedAdminUser(DB); err != nil {
		log.Printf("Warning: admin seeding failed: %v", err)
	}

	log.Println("\n[2/2] Seeding Default Services...")
	SeedServices(DB)

	log.Println("\n=== Database Seeding Complete ===")
	return nil
}

// SeedAdminUser creates the studio admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skips silently when the account already exists.
func SeedAdminUser(db *gorm.DB) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	pass := os.Getenv("ADMIN_PASSWORD")
	if email == "" || pass == "" {
		return errors.New("missing ADMIN_EMAIL or ADMIN_PASSWORD env vars")
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		log.Println("Admin user already exists:", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Studio Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Admin user seeded:", email)
	return nil
}

// SeedServices creates the default service catalog shown on the public site.
func SeedServices(db *gorm.DB) {
	var count int64
	db.Model(&models.Service{}).Count(&count)
	if count > 0 {
		log.Println("Services already seeded, skipping")
		return
	}

	services := []models.Service{
		{
			Name:        "Photography",
			Description: "Full-day candid and traditional photography coverage.",
			Icon:        "camera",
			Features:    models.JSONList([]string{"Candid coverage", "Traditional portraits", "Edited gallery"}),
		},
		{
			Name:        "Cinematic Video",
			Description: "Cinematic films shot and graded for the big screen.",
			Icon:        "film",
			Features:    models.JSONList([]string{"4K capture", "Color grading", "Highlight film"}),
		},
		{
			Name:        "Drone",
			Description: "Licensed aerial coverage of the venue and ceremonies.",
			Icon:        "drone",
			Features:    models.JSONList([]string{"Aerial stills", "Venue flyovers"}),
		},
		{
			Name:        "Album",
			Description: "Hand-designed printed albums on archival paper.",
			Icon:        "book",
			Features:    models.JSONList([]string{"Premium binding", "Custom layouts"}),
		},
		{
			Name:        "Live Streaming",
			Description: "Multi-camera live streams for remote guests.",
			Icon:        "broadcast",
			Features:    models.JSONList([]string{"Multi-cam switching", "Private stream links"}),
		},
	}

	for _, s := range services {
		if err := db.Create(&s).Error; err != nil {
			log.Printf("Warning: failed to seed service %q: %v", s.Name, err)
		}
	}
	log.Printf("Seeded %d services", len(services))
}
