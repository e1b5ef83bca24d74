package repositories

import (
	"fmt"
	"testing"

	"github.com/pawsconnect/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB returns an in-memory sqlite database migrated with the
// relational models.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.Pet{},
		&models.PetTransferRequest{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// createTestUser creates a user with a unique username/email.
func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:    username,
		DisplayName: username,
		Email:       fmt.Sprintf("%s@example.com", username),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user %s: %v", username, err)
	}
	return user
}

// createTestUserAt creates a user with a stored coordinate.
func createTestUserAt(t *testing.T, db *gorm.DB, username string, lat, lng float64) *models.User {
	t.Helper()
	user := createTestUser(t, db, username)
	user.Latitude = &lat
	user.Longitude = &lng
	if err := db.Save(user).Error; err != nil {
		t.Fatalf("failed to set coordinates for %s: %v", username, err)
	}
	return user
}
