package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/nkr-tech/nkr-tech-api/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db
}

func TestConnectDatabaseRequiresURL(t *testing.T) {
	_, err := ConnectDatabase("")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database URL is required")
}

func TestMigrateDatabase(t *testing.T) {
	db := openTestDB(t)

	err := MigrateDatabase(db)
	assert.NoError(t, err)

	for _, table := range []string{"orders", "demo_requests", "contacts", "feedback", "users", "admins"} {
		assert.True(t, db.Migrator().HasTable(table), "Table %q should exist after migration", table)
	}
}

func TestSeedDefaultAdmin(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, MigrateDatabase(db))

	assert.NoError(t, SeedDefaultAdmin(db))

	var admin models.Admin
	assert.NoError(t, db.Where("email = ?", DefaultAdminEmail).First(&admin).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(DefaultAdminPassword)))
}

func TestSeedDefaultAdminIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, MigrateDatabase(db))

	assert.NoError(t, SeedDefaultAdmin(db))
	assert.NoError(t, SeedDefaultAdmin(db))

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.Equal(t, int64(1), count, "Repeated seeding must not duplicate the admin")
}

func TestSeedSkipsWhenAnotherAdminExists(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, MigrateDatabase(db))

	db.Create(&models.Admin{Email: "owner@nkrtech.com", Password: "custom-hash"})
	assert.NoError(t, SeedDefaultAdmin(db))

	var count int64
	db.Model(&models.Admin{}).Count(&count)
	assert.Equal(t, int64(1), count, "Seeding must not add the default next to an existing admin")
}
