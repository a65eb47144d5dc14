package models

// CartLine is one selected menu item in a checkout session. It is transient
// state only, never persisted; UnitPrice is the catalog price captured when
// the line was first added.
type CartLine struct {
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `json:"name"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
}
