package models

// MenuItem is one sellable entry of the catalog. Names are not unique
// (the same dish can appear in several sizes), the owning category is.
type MenuItem struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	CategoryID  uint     `gorm:"not null;index" json:"category_id"`
	Category    Category `gorm:"foreignKey:CategoryID" json:"-"`
	Price       float64  `gorm:"not null" json:"price"`
	Description string   `json:"description"`
}
