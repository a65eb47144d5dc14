package models

// Category groups menu items. A category cannot be deleted while any
// menu item still references it.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}
