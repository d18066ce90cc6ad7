package catalog

import (
	"errors"
	"testing"

	"dorata/models"
)

func TestItemByID(t *testing.T) {
	item, err := ItemByID("margheritta")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if item.Name != "Margheritta" || !item.HasSizes {
		t.Fatalf("unexpected item %+v", item)
	}

	if _, err := ItemByID("ananas-special"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}

func TestPriceForSizedItem(t *testing.T) {
	item, _ := ItemByID("margheritta")

	price, err := PriceFor(item, models.SizeSenior)
	if err != nil || price != 17 {
		t.Fatalf("senior price = %v (%v), want 17", price, err)
	}
	price, err = PriceFor(item, models.SizeMega)
	if err != nil || price != 25 {
		t.Fatalf("mega price = %v (%v), want 25", price, err)
	}

	if _, err := PriceFor(item, ""); !errors.Is(err, ErrBadSize) {
		t.Fatalf("sized item without size must fail, got %v", err)
	}
	if _, err := PriceFor(item, "xl"); !errors.Is(err, ErrBadSize) {
		t.Fatalf("unknown size must fail, got %v", err)
	}
}

func TestPriceForFlatItem(t *testing.T) {
	item, _ := ItemByID("tiramisu")

	price, err := PriceFor(item, "")
	if err != nil || price != 3.50 {
		t.Fatalf("flat price = %v (%v), want 3.50", price, err)
	}

	if _, err := PriceFor(item, models.SizeSenior); !errors.Is(err, ErrBadSize) {
		t.Fatalf("flat item with size must fail, got %v", err)
	}
}

func TestEveryItemIsPriceable(t *testing.T) {
	for _, cat := range Menu {
		for _, item := range cat.Items {
			size := ""
			if item.HasSizes {
				size = models.SizeSenior
			}
			price, err := PriceFor(item, size)
			if err != nil {
				t.Fatalf("%s: %v", item.ItemID, err)
			}
			if price <= 0 {
				t.Fatalf("%s priced at %v", item.ItemID, price)
			}
		}
	}
}
