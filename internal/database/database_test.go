package database_test

import (
	"testing"

	"fitpro_backend/internal/config"
	"fitpro_backend/internal/database"
	"fitpro_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Database.Path = ":memory:"
	cfg.Admin.Username = "admin"
	cfg.Admin.Email = "admin@fitpro.com"
	cfg.Admin.Password = "admin123"
	return cfg
}

func TestSeed_IsIdempotent(t *testing.T) {
	cfg := testConfig()
	db, err := database.Open(cfg.Database.Path)
	require.NoError(t, err)
	defer database.Close(db)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, database.Seed(db, cfg))
	require.NoError(t, database.Seed(db, cfg))

	var admins int64
	db.Model(&models.User{}).Where("user_type = ?", models.UserRoleAdmin).Count(&admins)
	assert.EqualValues(t, 1, admins)

	var exercises int64
	db.Model(&models.Exercise{}).Count(&exercises)
	assert.EqualValues(t, 5, exercises)
}

func TestSeed_AdminAccount(t *testing.T) {
	cfg := testConfig()
	db, err := database.Initialize(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	var admin models.User
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.UserRoleAdmin, admin.Role)
	assert.Equal(t, "admin@fitpro.com", admin.Email)
	assert.True(t, admin.IsActive)
	assert.NotEqual(t, "admin123", admin.PasswordHash)
}

func TestMigrate_IsRepeatable(t *testing.T) {
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Migrate(db))
}

func TestSeed_CatalogContents(t *testing.T) {
	cfg := testConfig()
	db, err := database.Initialize(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	var pushups models.Exercise
	require.NoError(t, db.Where("name = ?", "Push-ups").First(&pushups).Error)
	assert.Equal(t, "Chest", pushups.Category)
	assert.Equal(t, "Beginner", pushups.DifficultyLevel)
}
