package orders

import (
	"errors"
	"testing"
	"time"

	"dorata/models"
)

func TestDecodeRow(t *testing.T) {
	row := orderRow{
		OrderID:       "ORD-1",
		CustomerName:  "Jean",
		CustomerPhone: "0612345678",
		PickupTime:    "19:30",
		Items:         []models.OrderItem{{Name: "Royale", Quantity: 2, Price: 17, Size: "Sénior"}},
		Total:         34,
		CreatedAt:     time.Now(),
		Status:        "pending",
	}

	order, err := decodeRow(row)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if order.Status != models.StatusPending || order.Total != 34 {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestDecodeRowRejectsMalformed(t *testing.T) {
	good := orderRow{OrderID: "ORD-1", CreatedAt: time.Now(), Status: "pending"}

	cases := []struct {
		name   string
		mutate func(*orderRow)
	}{
		{"missing id", func(r *orderRow) { r.OrderID = "" }},
		{"unknown status", func(r *orderRow) { r.Status = "shipped" }},
		{"zero created_at", func(r *orderRow) { r.CreatedAt = time.Time{} }},
	}

	for _, tc := range cases {
		row := good
		tc.mutate(&row)
		_, err := decodeRow(row)
		var rerr *RowError
		if !errors.As(err, &rerr) {
			t.Fatalf("%s: expected RowError, got %v", tc.name, err)
		}
	}
}
