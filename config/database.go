package config

import (
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/models"
)

// Default credential for the seeded operator account. Changed via the
// admin panel after first login.
const (
	DefaultAdminEmail    = "admin@nkrtech.com"
	DefaultAdminPassword = "Admin@123"
)

// ConnectDatabase establishes a connection to the PostgreSQL database
// and returns the handle. Callers own the handle and pass it to the
// controllers; there is no package-level connection.
func ConnectDatabase(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established successfully")
	return db, nil
}

// MigrateDatabase creates or updates the tables for every model
func MigrateDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Order{},
		&models.DemoRequest{},
		&models.Contact{},
		&models.Feedback{},
		&models.User{},
		&models.Admin{},
	)
}

// SeedDefaultAdmin creates the default operator account if no admin
// exists yet. Safe to run on every startup.
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	admin := models.Admin{
		Email:    DefaultAdminEmail,
		Password: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	log.Printf("Default admin created (%s)", DefaultAdminEmail)
	return nil
}
