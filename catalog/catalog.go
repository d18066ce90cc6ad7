package catalog

import (
	"errors"
	"fmt"

	"dorata/models"
)

var (
	ErrUnknownItem = errors.New("unknown catalog item")
	ErrBadSize     = errors.New("invalid size for item")
)

var itemsByID = map[string]models.MenuItem{}

func init() {
	for _, cat := range Menu {
		for _, item := range cat.Items {
			itemsByID[item.ItemID] = item
		}
	}
}

// ItemByID looks up a catalog item by its stable key.
func ItemByID(id string) (models.MenuItem, error) {
	item, ok := itemsByID[id]
	if !ok {
		return models.MenuItem{}, fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	return item, nil
}

// CategoryByID returns one category of the menu.
func CategoryByID(id string) (models.MenuCategory, error) {
	for _, cat := range Menu {
		if cat.CategoryID == id {
			return cat, nil
		}
	}
	return models.MenuCategory{}, fmt.Errorf("%w: category %s", ErrUnknownItem, id)
}

// PriceFor resolves the unit price of an item for the chosen size. Flat-priced
// items must be requested without a size; size-based items must name one of
// the two tiers.
func PriceFor(item models.MenuItem, size string) (float64, error) {
	if !item.HasSizes {
		if size != "" {
			return 0, fmt.Errorf("%w: %s takes no size", ErrBadSize, item.ItemID)
		}
		return item.Price, nil
	}
	price, ok := SizePrices[size]
	if !ok {
		return 0, fmt.Errorf("%w: %s requires senior or mega", ErrBadSize, item.ItemID)
	}
	return price, nil
}
