package controllers

import (
	"testing"

	"github.com/Meghana-710/CalmSpace/config"
	"github.com/Meghana-710/CalmSpace/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package at a fresh in-memory database. Tests share
// the config.DB global, so they must not run in parallel.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	config.DB = db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

// seedAvailability declares a schedule and fails the test on any error.
func seedAvailability(t *testing.T, date string, slots []string) *models.Availability {
	t.Helper()

	availability, err := upsertAvailability(date, slots)
	require.NoError(t, err)
	return availability
}

// approvedTopup pushes money into a user's wallet through the normal
// request-then-approve flow.
func approvedTopup(t *testing.T, userID uint, amount int64, ref string) {
	t.Helper()

	transaction, err := requestTopup(userID, amount, ref)
	require.NoError(t, err)
	_, err = resolveTopup(transaction.ID, TopupDecisionApprove)
	require.NoError(t, err)
}
