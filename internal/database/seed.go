package database

import (
	"fmt"

	"github.com/chaiandgrill/pos-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the five POS tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.Bill{},
		&models.BillItem{},
	)
}

// Bootstrap credentials for a fresh install. The password is hashed before it
// is stored; change it after first login.
const (
	SeedAdminName     = "admin"
	SeedAdminPassword = "admin123"
)

var seedCategories = []string{
	"Pizza", "Pasta", "Steaks", "Starters", "Burger",
	"Shawarma / Paratha", "Wraps", "Sandwich", "Coffee & Chai", "Dessert", "Beverage",
}

type seedItem struct {
	category    string
	name        string
	price       float64
	description string
}

var seedMenu = []seedItem{
	{"Pizza", "Chicken Tikka", 379, "Small size"},
	{"Pizza", "Chicken Tikka", 709, "Regular size"},
	{"Pizza", "Chicken Tikka", 1119, "Large size"},
	{"Pizza", "Chicken Fajita", 379, "Small size"},
	{"Pizza", "Chicken Fajita", 709, "Regular size"},
	{"Pizza", "Chicken Fajita", 1119, "Large size"},

	{"Pasta", "Fettucine Alfredo With White Sauce", 605, ""},
	{"Pasta", "Chicken Chowmien", 459, ""},
	{"Pasta", "Penny Pasta With white Sauce", 605, ""},

	{"Steaks", "B.B.Q Steak with Spicy Sauce", 999, ""},
	{"Steaks", "Terragone Steak", 999, ""},
	{"Steaks", "Mexican Steak", 999, ""},
	{"Steaks", "Mushroom Steak", 999, ""},
	{"Steaks", "Black Pepper Steak", 999, ""},

	{"Starters", "Behari Spin Roll", 515, ""},
	{"Starters", "Behari Spin Roll Platter", 839, ""},
	{"Starters", "French Fries Large", 269, ""},
	{"Starters", "Masala Fries Large", 285, ""},
	{"Starters", "Loaded Fries", 499, ""},

	{"Burger", "Chicken Zinger Burger", 429, ""},
	{"Burger", "Double Decker Zinger Burger", 539, ""},
	{"Burger", "Cheesy Chicken Zinger Burger", 469, ""},
	{"Burger", "Chicken Chapli Burger", 319, ""},
	{"Burger", "Chicken Patty Burger", 319, ""},

	{"Shawarma / Paratha", "Arabian Shawarma Large", 199, ""},
	{"Shawarma / Paratha", "Feast Roll", 369, ""},
	{"Shawarma / Paratha", "Platter Shawarma", 479, ""},
	{"Shawarma / Paratha", "Kabab Roll", 299, ""},

	{"Wraps", "Afghani Wrap", 529, ""},
	{"Wraps", "Rapa Wrap", 609, ""},
	{"Wraps", "Tortilla Crunch Warp", 519, ""},
	{"Wraps", "Tortilla Grilled Warp", 519, ""},
	{"Wraps", "Turkish Warp", 579, ""},

	{"Sandwich", "Grilled Chicken Sandwich", 439, ""},
	{"Sandwich", "Mexican Sandwich", 579, ""},
	{"Sandwich", "Club Sandwich", 569, ""},

	{"Coffee & Chai", "Regular Tea", 120, ""},
	{"Coffee & Chai", "Cardamom Tea", 130, ""},
	{"Coffee & Chai", "Green Tea", 99, ""},

	{"Dessert", "Lava cake with ice cream", 419, ""},
	{"Dessert", "Lava cake without ice cream", 359, ""},

	{"Beverage", "Soft Drink 1.5 Liter", 199, ""},
	{"Beverage", "Soft Drink 1 Liter", 149, ""},
	{"Beverage", "Mineral Water Large", 99, ""},
	{"Beverage", "Mineral Water Small", 55, ""},
}

// Seed populates an empty store with the bootstrap admin account, the default
// category list and the default menu. Each block is guarded by a row count so
// repeated startups never duplicate or overwrite data.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		admin := models.User{
			Name:     SeedAdminName,
			Password: SeedAdminPassword,
			Role:     models.RoleAdmin,
		}
		if err := admin.HashPassword(); err != nil {
			return err
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.WithField("user", SeedAdminName).Info("Seeded bootstrap admin account")
	}

	var categoryCount int64
	if err := db.Model(&models.Category{}).Count(&categoryCount).Error; err != nil {
		return err
	}
	if categoryCount == 0 {
		for _, name := range seedCategories {
			if err := db.Create(&models.Category{Name: name}).Error; err != nil {
				return err
			}
		}
		log.WithField("count", len(seedCategories)).Info("Seeded default categories")
	}

	var itemCount int64
	if err := db.Model(&models.MenuItem{}).Count(&itemCount).Error; err != nil {
		return err
	}
	if itemCount == 0 {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			return err
		}
		byName := make(map[string]uint, len(categories))
		for _, c := range categories {
			byName[c.Name] = c.ID
		}

		for _, entry := range seedMenu {
			categoryID, ok := byName[entry.category]
			if !ok {
				return fmt.Errorf("seed menu references unknown category %q", entry.category)
			}
			item := models.MenuItem{
				Name:        entry.name,
				CategoryID:  categoryID,
				Price:       entry.price,
				Description: entry.description,
			}
			if err := db.Create(&item).Error; err != nil {
				return err
			}
		}
		log.WithField("count", len(seedMenu)).Info("Seeded default menu")
	}

	return nil
}
