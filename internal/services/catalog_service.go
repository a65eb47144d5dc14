package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/chaiandgrill/pos-api/internal/models"
	"gorm.io/gorm"
)

// CatalogService provides category and menu item management
type CatalogService interface {
	// ListCategories retrieves all categories ordered by name
	ListCategories() ([]models.Category, error)
	// CategoryNames retrieves all category names ordered by name
	CategoryNames() ([]string, error)
	// CreateCategory adds a new category with a unique name
	CreateCategory(name string) (models.Category, error)
	// RenameCategory changes a category's name
	RenameCategory(id uint, name string) error
	// DeleteCategory removes a category that no menu item references
	DeleteCategory(id uint) error

	// ItemsByCategoryID retrieves a category's menu items ordered by name
	ItemsByCategoryID(categoryID uint) ([]models.MenuItem, error)
	// ItemsByCategoryName retrieves menu items for the named category ordered by name
	ItemsByCategoryName(categoryName string) ([]models.MenuItem, error)
	// SearchItems retrieves menu items matching a case-insensitive substring of the name
	SearchItems(term string) ([]models.MenuItem, error)
	// ItemByID retrieves a single menu item
	ItemByID(id uint) (models.MenuItem, error)
	// CreateItem adds a menu item under an existing category
	CreateItem(categoryID uint, name string, price float64, description string) (models.MenuItem, error)
	// UpdateItem edits an existing menu item
	UpdateItem(id, categoryID uint, name string, price float64, description string) error
	// DeleteItem removes a menu item that no bill references
	DeleteItem(id uint) error
	// ItemCount returns the catalog-wide number of menu items
	ItemCount() (int64, error)
}

type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

func (s *catalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return categories, nil
}

func (s *catalogService) CategoryNames() ([]string, error) {
	var names []string
	if err := s.db.Model(&models.Category{}).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return names, nil
}

func (s *catalogService) CreateCategory(name string) (models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Category{}, fmt.Errorf("%w: category name is required", models.ErrValidation)
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return models.Category{}, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if count > 0 {
		return models.Category{}, fmt.Errorf("%w: category %q", models.ErrDuplicateName, name)
	}

	category := models.Category{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return models.Category{}, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return category, nil
}

func (s *catalogService) RenameCategory(id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", models.ErrValidation)
	}

	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return translateLookupErr(err, "category", id)
	}

	// A rename may collide only with a different category.
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("name = ? AND id <> ?", name, id).
		Count(&count).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if count > 0 {
		return fmt.Errorf("%w: category %q", models.ErrDuplicateName, name)
	}

	if err := s.db.Model(&category).Update("name", name).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}

func (s *catalogService) DeleteCategory(id uint) error {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return translateLookupErr(err, "category", id)
	}

	// Explicit referential guard: deletion fails while children exist,
	// independent of the storage engine's constraint behavior.
	var children int64
	if err := s.db.Model(&models.MenuItem{}).Where("category_id = ?", id).Count(&children).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if children > 0 {
		return fmt.Errorf("%w: category %q has %d menu items", models.ErrReferentialConflict, category.Name, children)
	}

	if err := s.db.Delete(&category).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}

func (s *catalogService) ItemsByCategoryID(categoryID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := s.db.Where("category_id = ?", categoryID).Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return items, nil
}

func (s *catalogService) ItemsByCategoryName(categoryName string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.db.
		Joins("JOIN categories ON categories.id = menu_items.category_id").
		Where("categories.name = ?", categoryName).
		Order("menu_items.name").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return items, nil
}

func (s *catalogService) SearchItems(term string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	pattern := "%" + strings.ToLower(term) + "%"
	if err := s.db.Where("LOWER(name) LIKE ?", pattern).Order("name").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return items, nil
}

func (s *catalogService) ItemByID(id uint) (models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return models.MenuItem{}, translateLookupErr(err, "menu item", id)
	}
	return item, nil
}

func (s *catalogService) CreateItem(categoryID uint, name string, price float64, description string) (models.MenuItem, error) {
	if err := validateItemInput(name, price); err != nil {
		return models.MenuItem{}, err
	}

	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return models.MenuItem{}, translateLookupErr(err, "category", categoryID)
	}

	item := models.MenuItem{
		Name:        strings.TrimSpace(name),
		CategoryID:  categoryID,
		Price:       price,
		Description: description,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return item, nil
}

func (s *catalogService) UpdateItem(id, categoryID uint, name string, price float64, description string) error {
	if err := validateItemInput(name, price); err != nil {
		return err
	}

	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return translateLookupErr(err, "menu item", id)
	}

	var category models.Category
	if err := s.db.First(&category, categoryID).Error; err != nil {
		return translateLookupErr(err, "category", categoryID)
	}

	item.Name = strings.TrimSpace(name)
	item.CategoryID = categoryID
	item.Price = price
	item.Description = description
	if err := s.db.Save(&item).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}

func (s *catalogService) DeleteItem(id uint) error {
	var item models.MenuItem
	if err := s.db.First(&item, id).Error; err != nil {
		return translateLookupErr(err, "menu item", id)
	}

	// Items that appear on any historical bill must stay resolvable by name.
	var references int64
	if err := s.db.Model(&models.BillItem{}).Where("menu_item_id = ?", id).Count(&references).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	if references > 0 {
		return fmt.Errorf("%w: menu item %q appears on %d bills", models.ErrReferentialConflict, item.Name, references)
	}

	if err := s.db.Delete(&item).Error; err != nil {
		return fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return nil
}

func (s *catalogService) ItemCount() (int64, error) {
	var count int64
	if err := s.db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %v", models.ErrPersistence, err)
	}
	return count, nil
}

func validateItemInput(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: item name is required", models.ErrValidation)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", models.ErrValidation)
	}
	return nil
}

// translateLookupErr folds gorm's record-not-found into the service taxonomy.
func translateLookupErr(err error, kind string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %d", models.ErrNotFound, kind, id)
	}
	return fmt.Errorf("%w: %v", models.ErrPersistence, err)
}
