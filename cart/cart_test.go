package cart

import (
	"testing"

	"dorata/models"
)

func margheritta() models.MenuItem {
	return models.MenuItem{ItemID: "margheritta", Name: "Margheritta", HasSizes: true, Category: "pizzas-tomate"}
}

func tiramisu() models.MenuItem {
	return models.MenuItem{ItemID: "tiramisu", Name: "Tiramisu Maison", Price: 3.50, Category: "desserts"}
}

func checkDerived(t *testing.T, c *Cart) {
	t.Helper()
	v := c.View()
	total := 0.0
	count := 0
	for _, l := range v.Lines {
		total += l.Price * float64(l.Quantity)
		count += l.Quantity
	}
	if v.Total != total {
		t.Fatalf("total = %v, want %v", v.Total, total)
	}
	if v.ItemCount != count {
		t.Fatalf("itemCount = %d, want %d", v.ItemCount, count)
	}
}

func TestAddItemIncrementsExistingLine(t *testing.T) {
	c := New()
	c.AddItem(margheritta(), models.SizeSenior, 17)
	c.AddItem(margheritta(), models.SizeSenior, 17)

	v := c.View()
	if len(v.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(v.Lines))
	}
	if v.Lines[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want 2", v.Lines[0].Quantity)
	}
	checkDerived(t, c)
}

func TestSizesAreDistinctLines(t *testing.T) {
	c := New()
	c.AddItem(margheritta(), models.SizeSenior, 17)
	c.AddItem(margheritta(), models.SizeMega, 25)

	v := c.View()
	if len(v.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(v.Lines))
	}
	if v.Total != 42 {
		t.Fatalf("total = %v, want 42", v.Total)
	}
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(tiramisu(), "", 3.50)
	id := LineID("tiramisu", "")

	c.UpdateQuantity(id, 0)

	v := c.View()
	if len(v.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(v.Lines))
	}
	if v.Total != 0 || v.ItemCount != 0 {
		t.Fatalf("total/count = %v/%d, want 0/0", v.Total, v.ItemCount)
	}

	// removing an absent line is a no-op
	c.UpdateQuantity(id, 0)
	c.RemoveItem(id)
}

func TestDerivedValuesUnderMutationSequence(t *testing.T) {
	c := New()
	c.AddItem(margheritta(), models.SizeSenior, 17)
	checkDerived(t, c)
	c.AddItem(tiramisu(), "", 3.50)
	checkDerived(t, c)
	c.UpdateQuantity(LineID("margheritta", models.SizeSenior), 3)
	checkDerived(t, c)
	c.AddItem(margheritta(), models.SizeSenior, 17)
	checkDerived(t, c)
	c.RemoveItem(LineID("tiramisu", ""))
	checkDerived(t, c)
	c.UpdateQuantity(LineID("margheritta", models.SizeSenior), 0)
	checkDerived(t, c)

	if !c.Empty() {
		t.Fatal("expected empty cart after removing every line")
	}
}

func TestInsertionOrderIsStable(t *testing.T) {
	c := New()
	c.AddItem(tiramisu(), "", 3.50)
	c.AddItem(margheritta(), models.SizeSenior, 17)
	c.AddItem(tiramisu(), "", 3.50) // increments, must not reorder

	v := c.View()
	if v.Lines[0].ItemID != "tiramisu" || v.Lines[1].ItemID != "margheritta" {
		t.Fatalf("unexpected line order: %s, %s", v.Lines[0].ItemID, v.Lines[1].ItemID)
	}
}

func TestConcreteScenario(t *testing.T) {
	c := New()
	c.AddItem(margheritta(), models.SizeSenior, 17)
	c.AddItem(tiramisu(), "", 3.50)

	v := c.View()
	if v.Total != 20.50 {
		t.Fatalf("total = %v, want 20.50", v.Total)
	}
	if v.ItemCount != 2 {
		t.Fatalf("itemCount = %d, want 2", v.ItemCount)
	}
}

func TestClear(t *testing.T) {
	c := New()
	c.AddItem(margheritta(), models.SizeMega, 25)
	c.Clear()

	v := c.View()
	if len(v.Lines) != 0 || v.Total != 0 || v.ItemCount != 0 {
		t.Fatalf("cart not empty after Clear: %+v", v)
	}
}

func TestSessionsMintAndReuse(t *testing.T) {
	s := NewSessions()
	defer s.Stop()

	id, c := s.GetOrCreate("")
	if id == "" {
		t.Fatal("expected a session id")
	}
	c.AddItem(tiramisu(), "", 3.50)

	id2, c2 := s.GetOrCreate(id)
	if id2 != id {
		t.Fatalf("session id changed: %s -> %s", id, id2)
	}
	if c2.View().ItemCount != 1 {
		t.Fatal("expected the same cart back")
	}

	if _, ok := s.Get("unknown"); ok {
		t.Fatal("unknown session should not resolve")
	}
}
