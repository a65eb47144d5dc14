package models

import "time"

// WalkInCustomer is the customer label recorded when no name is given at checkout.
const WalkInCustomer = "Walk-in Customer"

// Bill is a finalized sale. Bills are written exactly once at checkout and
// never mutated or deleted afterwards.
type Bill struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	CustomerName string     `json:"customer_name"`
	TotalAmount  float64    `gorm:"not null" json:"total_amount"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	User         User       `gorm:"foreignKey:UserID" json:"-"`
	Items        []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// BillItem is one line of a bill. UnitPrice is the price snapshot taken when
// the item was added to the cart, so later catalog edits never alter the bill.
type BillItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	BillID     uint     `gorm:"not null;index" json:"bill_id"`
	MenuItemID uint     `gorm:"not null;index" json:"menu_item_id"`
	MenuItem   MenuItem `gorm:"foreignKey:MenuItemID" json:"-"`
	Quantity   int      `gorm:"not null" json:"quantity"`
	UnitPrice  float64  `gorm:"not null" json:"unit_price"`
}

// BillLine is the read model for one bill line as shown on receipts and the
// dashboard: the item name joined in, plus the derived line total.
type BillLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}
