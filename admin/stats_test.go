package admin

import (
	"testing"

	"dorata/models"
)

func TestComputeTally(t *testing.T) {
	list := []models.Order{
		{OrderID: "ORD-1", Total: 20.50, Status: models.StatusPending},
		{OrderID: "ORD-2", Total: 28, Status: models.StatusReady},
		{OrderID: "ORD-3", Total: 37.50, Status: models.StatusPending},
		{OrderID: "ORD-4", Total: 14, Status: models.StatusCompleted},
	}

	tally := ComputeTally(list)
	if tally.Total != 4 {
		t.Fatalf("total = %d, want 4", tally.Total)
	}
	if tally.ByStatus[models.StatusPending] != 2 {
		t.Fatalf("pending = %d, want 2", tally.ByStatus[models.StatusPending])
	}
	if tally.ByStatus[models.StatusReady] != 1 {
		t.Fatalf("ready = %d, want 1", tally.ByStatus[models.StatusReady])
	}
	if tally.ByStatus[models.StatusCompleted] != 1 {
		t.Fatalf("completed = %d, want 1", tally.ByStatus[models.StatusCompleted])
	}
	if tally.Revenue != 100 {
		t.Fatalf("revenue = %v, want 100", tally.Revenue)
	}
	if tally.AverageOrder != 25 {
		t.Fatalf("averageOrder = %v, want 25", tally.AverageOrder)
	}
}

func TestComputeTallyEmpty(t *testing.T) {
	tally := ComputeTally(nil)
	if tally.Total != 0 || tally.Revenue != 0 || tally.AverageOrder != 0 {
		t.Fatalf("unexpected tally for no orders: %+v", tally)
	}
	// every status key must be present for the dashboard cards
	for _, s := range []models.OrderStatus{models.StatusPending, models.StatusReady, models.StatusCompleted} {
		if _, ok := tally.ByStatus[s]; !ok {
			t.Fatalf("missing status key %s", s)
		}
	}
}
