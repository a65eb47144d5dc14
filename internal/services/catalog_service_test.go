package services

import (
	"errors"
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

	err = db.AutoMigrate(&models.User{}, &models.Category{}, &models.MenuItem{}, &models.Bill{}, &models.BillItem{})
	require.NoError(t, err)

	return db
}

func TestCreateCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	category, err := svc.CreateCategory("Tea")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Tea", category.Name)

	// Exact duplicate is rejected
	_, err = svc.CreateCategory("Tea")
	assert.ErrorIs(t, err, models.ErrDuplicateName)

	// A distinct name still works and is retrievable
	_, err = svc.CreateCategory("Coffee")
	require.NoError(t, err)

	names, err := svc.CategoryNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Coffee", "Tea"}, names)
}

func TestCreateCategoryValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.CreateCategory("   ")
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestRenameCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	tea, err := svc.CreateCategory("Tea")
	require.NoError(t, err)
	coffee, err := svc.CreateCategory("Coffee")
	require.NoError(t, err)

	// Renaming onto another category's name collides
	err = svc.RenameCategory(tea.ID, "Coffee")
	assert.ErrorIs(t, err, models.ErrDuplicateName)

	// Renaming to its own name is a no-op, not a collision
	err = svc.RenameCategory(coffee.ID, "Coffee")
	assert.NoError(t, err)

	err = svc.RenameCategory(tea.ID, "Green Tea")
	require.NoError(t, err)

	err = svc.RenameCategory(9999, "Anything")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteCategoryReferentialGuard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	tea, err := svc.CreateCategory("Tea")
	require.NoError(t, err)
	_, err = svc.CreateItem(tea.ID, "Green Tea", 99, "")
	require.NoError(t, err)

	// Delete is blocked while a menu item references the category
	err = svc.DeleteCategory(tea.ID)
	assert.ErrorIs(t, err, models.ErrReferentialConflict)

	// Both rows and the relationship are untouched
	var categoryCount, itemCount int64
	db.Model(&models.Category{}).Count(&categoryCount)
	db.Model(&models.MenuItem{}).Count(&itemCount)
	assert.EqualValues(t, 1, categoryCount)
	assert.EqualValues(t, 1, itemCount)

	// An empty category deletes cleanly
	empty, err := svc.CreateCategory("Empty")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteCategory(empty.ID))

	db.Model(&models.Category{}).Count(&categoryCount)
	assert.EqualValues(t, 1, categoryCount)
}

func TestMenuItemListingAndSearch(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	tea, err := svc.CreateCategory("Coffee & Chai")
	require.NoError(t, err)

	for _, name := range []string{"Regular Tea", "Cardamom Tea", "Green Tea"} {
		_, err := svc.CreateItem(tea.ID, name, 99, "")
		require.NoError(t, err)
	}

	byID, err := svc.ItemsByCategoryID(tea.ID)
	require.NoError(t, err)
	require.Len(t, byID, 3)
	assert.Equal(t, "Cardamom Tea", byID[0].Name)
	assert.Equal(t, "Green Tea", byID[1].Name)
	assert.Equal(t, "Regular Tea", byID[2].Name)

	byName, err := svc.ItemsByCategoryName("Coffee & Chai")
	require.NoError(t, err)
	assert.Len(t, byName, 3)

	// Search is case-insensitive and category-independent
	found, err := svc.SearchItems("gReEn")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Green Tea", found[0].Name)

	none, err := svc.SearchItems("pizza")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreateItemValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	tea, err := svc.CreateCategory("Tea")
	require.NoError(t, err)

	_, err = svc.CreateItem(tea.ID, "", 10, "")
	assert.ErrorIs(t, err, models.ErrValidation)

	_, err = svc.CreateItem(tea.ID, "Green Tea", -1, "")
	assert.ErrorIs(t, err, models.ErrValidation)

	// Owning category must exist at creation time
	_, err = svc.CreateItem(9999, "Green Tea", 10, "")
	assert.ErrorIs(t, err, models.ErrNotFound)

	// Names are not unique: the same dish in two sizes is fine
	_, err = svc.CreateItem(tea.ID, "Green Tea", 99, "Small")
	require.NoError(t, err)
	_, err = svc.CreateItem(tea.ID, "Green Tea", 149, "Large")
	require.NoError(t, err)
}

func TestUpdateItem(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	tea, err := svc.CreateCategory("Tea")
	require.NoError(t, err)
	item, err := svc.CreateItem(tea.ID, "Green Tea", 99, "")
	require.NoError(t, err)

	err = svc.UpdateItem(item.ID, tea.ID, "Green Tea", 120, "New blend")
	require.NoError(t, err)

	updated, err := svc.ItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.Price)
	assert.Equal(t, "New blend", updated.Description)

	err = svc.UpdateItem(9999, tea.ID, "Green Tea", 120, "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteItemReferentialGuard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	tea, err := svc.CreateCategory("Tea")
	require.NoError(t, err)
	item, err := svc.CreateItem(tea.ID, "Green Tea", 99, "")
	require.NoError(t, err)

	// Simulate a historical sale referencing the item
	bill := models.Bill{CustomerName: models.WalkInCustomer, TotalAmount: 99, UserID: 1}
	require.NoError(t, db.Create(&bill).Error)
	require.NoError(t, db.Create(&models.BillItem{BillID: bill.ID, MenuItemID: item.ID, Quantity: 1, UnitPrice: 99}).Error)

	err = svc.DeleteItem(item.ID)
	assert.ErrorIs(t, err, models.ErrReferentialConflict)

	// An unreferenced item deletes cleanly
	other, err := svc.CreateItem(tea.ID, "Regular Tea", 120, "")
	require.NoError(t, err)
	require.NoError(t, svc.DeleteItem(other.ID))

	_, err = svc.ItemByID(other.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestItemCount(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCatalogService(db)

	count, err := svc.ItemCount()
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	tea, err := svc.CreateCategory("Tea")
	require.NoError(t, err)
	_, err = svc.CreateItem(tea.ID, "Green Tea", 99, "")
	require.NoError(t, err)

	count, err = svc.ItemCount()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
