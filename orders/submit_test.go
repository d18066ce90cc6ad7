package orders

import (
	"context"
	"errors"
	"testing"

	"dorata/cart"
	"dorata/models"
)

func loadedCart() *cart.Cart {
	c := cart.New()
	c.AddItem(models.MenuItem{ItemID: "margheritta", Name: "Margheritta", HasSizes: true}, models.SizeSenior, 17)
	c.AddItem(models.MenuItem{ItemID: "tiramisu", Name: "Tiramisu Maison", Price: 3.50}, "", 3.50)
	return c
}

func TestSubmitHappyPath(t *testing.T) {
	store := NewStore(NewMemoryPersistence())
	c := loadedCart()

	form := SubmissionForm{Name: "Jean", Phone: "0612345678", PickupTime: "19:30"}
	order, err := Submit(context.Background(), store, c, form)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if order.Status != models.StatusPending {
		t.Fatalf("status = %s, want pending", order.Status)
	}
	if order.Total != 20.50 {
		t.Fatalf("total = %v, want 20.50", order.Total)
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("createdAt not set")
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	if order.Items[0].Size != "Sénior" {
		t.Fatalf("size label = %q, want Sénior", order.Items[0].Size)
	}
	if order.Items[1].Size != "" {
		t.Fatalf("flat item got size label %q", order.Items[1].Size)
	}

	if !c.Empty() {
		t.Fatal("cart should be cleared after a confirmed submission")
	}

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].OrderID != order.OrderID {
		t.Fatalf("store does not hold the submitted order: %+v", list)
	}
}

func TestSubmitStoresPhoneStripped(t *testing.T) {
	store := NewStore(NewMemoryPersistence())
	c := loadedCart()

	form := SubmissionForm{Name: "Jean", Phone: "06\t12 34\u00a056 78", PickupTime: "19:30"}
	order, err := Submit(context.Background(), store, c, form)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if order.CustomerPhone != "0612345678" {
		t.Fatalf("phone = %q, want digits only", order.CustomerPhone)
	}
}

func TestSubmitValidationFailureKeepsCart(t *testing.T) {
	store := NewStore(NewMemoryPersistence())
	c := loadedCart()

	form := SubmissionForm{Name: "", Phone: "061234", PickupTime: "19:30"}
	_, err := Submit(context.Background(), store, c, form)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 2 {
		t.Fatalf("expected two field errors, got %v", verr.Fields)
	}
	if c.Empty() {
		t.Fatal("cart must stay intact on validation failure")
	}
	if list, _ := store.List(context.Background()); len(list) != 0 {
		t.Fatal("nothing may reach the store on validation failure")
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	store := NewStore(NewMemoryPersistence())
	c := cart.New()

	form := SubmissionForm{Name: "Jean", Phone: "0612345678", PickupTime: "19:30"}
	if _, err := Submit(context.Background(), store, c, form); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

// failingPersistence refuses every insert, simulating a dead backend.
type failingPersistence struct{ *MemoryPersistence }

var errBackendDown = errors.New("backend unavailable")

func (f *failingPersistence) Insert(ctx context.Context, order models.Order) error {
	return errBackendDown
}

func TestSubmitAppendFailureKeepsCart(t *testing.T) {
	store := NewStore(&failingPersistence{NewMemoryPersistence()})
	c := loadedCart()

	form := SubmissionForm{Name: "Jean", Phone: "0612345678", PickupTime: "19:30"}
	_, err := Submit(context.Background(), store, c, form)

	var serr *SubmissionError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SubmissionError, got %v", err)
	}
	if !errors.Is(err, errBackendDown) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
	if c.Empty() {
		t.Fatal("cart must survive an append failure for retry")
	}
}
