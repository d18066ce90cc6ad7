package models

import "time"

// CartLine represents one distinct (item, size) selection in a cart.
// LineID is the composite identity: the item id alone for flat-priced items,
// or "itemId:size" for size-based ones. Price is the unit price snapshotted
// when the line was created, so later catalog edits never change an open cart.
type CartLine struct {
	LineID      string    `json:"lineId"`
	ItemID      string    `json:"itemId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Size        string    `json:"size,omitempty"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	AddedAt     time.Time `json:"addedAt"`
}

// CartView is the read-model handed to the presentation layer: the line set
// plus the derived totals, always a consistent triple.
type CartView struct {
	Lines     []CartLine `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}
