package database

import (
	"testing"

	"github.com/chaiandgrill/pos-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedPopulatesFreshStore(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Seed(db))

	var admin models.User
	require.NoError(t, db.Where("name = ?", SeedAdminName).First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.True(t, admin.CheckPassword(SeedAdminPassword))
	assert.NotEqual(t, SeedAdminPassword, admin.Password)

	var categoryCount, itemCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	db.Model(&models.MenuItem{}).Count(&itemCount)
	assert.EqualValues(t, len(seedCategories), categoryCount)
	assert.EqualValues(t, len(seedMenu), itemCount)

	// Every seeded item resolves to its owning category
	var greenTea models.MenuItem
	require.NoError(t, db.Where("name = ?", "Green Tea").First(&greenTea).Error)
	assert.Equal(t, 99.0, greenTea.Price)

	var chai models.Category
	require.NoError(t, db.First(&chai, greenTea.CategoryID).Error)
	assert.Equal(t, "Coffee & Chai", chai.Name)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var userCount, categoryCount, itemCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Category{}).Count(&categoryCount)
	db.Model(&models.MenuItem{}).Count(&itemCount)

	assert.EqualValues(t, 1, userCount)
	assert.EqualValues(t, len(seedCategories), categoryCount)
	assert.EqualValues(t, len(seedMenu), itemCount)
}

func TestSeedSkipsNonEmptyTables(t *testing.T) {
	db := setupTestDB(t)

	// An operator-created account suppresses the bootstrap admin
	existing := models.User{Name: "owner", Password: "x", Role: models.RoleAdmin}
	require.NoError(t, existing.HashPassword())
	require.NoError(t, db.Create(&existing).Error)

	require.NoError(t, Seed(db))

	var admins int64
	db.Model(&models.User{}).Where("name = ?", SeedAdminName).Count(&admins)
	assert.Zero(t, admins)

	// Catalog tables were empty and still get their defaults
	var categoryCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	assert.EqualValues(t, len(seedCategories), categoryCount)
}
