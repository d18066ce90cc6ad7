package models

// MenuItem is a single orderable catalog entry. Items with HasSizes set have
// no flat price; their price comes from the size variant chosen at add time.
type MenuItem struct {
	ItemID      string  `json:"id" bson:"itemId"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description" bson:"description"`
	Price       float64 `json:"price,omitempty" bson:"price,omitempty"`
	HasSizes    bool    `json:"hasSizes,omitempty" bson:"hasSizes,omitempty"`
	Category    string  `json:"category" bson:"category"`
}

// MenuCategory groups items for display. Categories keep their declaration
// order so the storefront renders the menu the way the pizzeria wrote it.
type MenuCategory struct {
	CategoryID  string     `json:"id" bson:"categoryId"`
	Name        string     `json:"name" bson:"name"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	HasSizes    bool       `json:"hasSizes,omitempty" bson:"hasSizes,omitempty"`
	Items       []MenuItem `json:"items" bson:"items"`
}

// Size variants for pizzas. These are the only two tiers the kitchen makes.
const (
	SizeSenior = "senior"
	SizeMega   = "mega"
)

// SizeLabel returns the display label for a size variant, or "" for flat-priced items.
func SizeLabel(size string) string {
	switch size {
	case SizeSenior:
		return "Sénior"
	case SizeMega:
		return "Méga"
	default:
		return ""
	}
}
