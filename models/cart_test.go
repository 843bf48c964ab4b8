package models

import "testing"

func gasCharge() SubService {
	return SubService{ID: "ac-gas", Name: "AC Gas Charge (up to 1.5 ton)", Price: 2499}
}

func jetService() SubService {
	return SubService{ID: "ac-s-jet", Name: "Split AC Jet Service", Price: 599}
}

func TestAddItemIncrementsExistingEntry(t *testing.T) {
	cart := &Cart{}
	for i := 0; i < 3; i++ {
		cart.AddItem(gasCharge(), "AC Service & Repair")
	}

	if cart.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", cart.Len())
	}
	item := cart.Items()[0]
	if item.Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", item.Quantity)
	}
	if item.ParentServiceName != "AC Service & Repair" {
		t.Errorf("parent service name not kept: %q", item.ParentServiceName)
	}
}

func TestSetQuantityReplacesNotIncrements(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(gasCharge(), "AC Service & Repair")
	cart.SetQuantity("ac-gas", 5)

	if got := cart.Items()[0].Quantity; got != 5 {
		t.Errorf("expected quantity 5, got %d", got)
	}
}

func TestSetQuantityZeroRemovesAndIsIdempotent(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(gasCharge(), "AC Service & Repair")

	cart.SetQuantity("ac-gas", 0)
	if cart.Len() != 0 {
		t.Fatalf("entry should be removed, got %d entries", cart.Len())
	}

	// Second removal of the same id must be a no-op.
	cart.SetQuantity("ac-gas", 0)
	if cart.Len() != 0 {
		t.Errorf("repeat removal should stay empty, got %d entries", cart.Len())
	}
}

func TestSetQuantityUnknownIDIsNoOp(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(gasCharge(), "AC Service & Repair")
	cart.SetQuantity("no-such-id", 4)

	if cart.Len() != 1 || cart.Items()[0].Quantity != 1 {
		t.Errorf("unknown id changed the cart: %+v", cart.Items())
	}
}

func TestTotalRoundTrip(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(gasCharge(), "AC Service & Repair")
	before := cart.Total()
	if before != 2499 {
		t.Fatalf("expected total 2499, got %d", before)
	}

	cart.AddItem(jetService(), "AC Service & Repair")
	if cart.Total() != 2499+599 {
		t.Fatalf("expected total %d, got %d", 2499+599, cart.Total())
	}

	cart.SetQuantity("ac-s-jet", 0)
	if cart.Total() != before {
		t.Errorf("removing the item should restore total %d, got %d", before, cart.Total())
	}
}

func TestTotalRecomputedAfterQuantityChange(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(gasCharge(), "AC Service & Repair")
	cart.AddItem(gasCharge(), "AC Service & Repair")

	if cart.Total() != 4998 {
		t.Errorf("expected total 4998, got %d", cart.Total())
	}
}

func TestItemsReturnsCopy(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(gasCharge(), "AC Service & Repair")

	items := cart.Items()
	items[0].Quantity = 99

	if cart.Items()[0].Quantity != 1 {
		t.Error("mutating the returned slice must not change the cart")
	}
}

func TestClearEmptiesCart(t *testing.T) {
	cart := &Cart{}
	cart.AddItem(gasCharge(), "AC Service & Repair")
	cart.Clear()

	if cart.Len() != 0 || cart.Total() != 0 {
		t.Errorf("clear left entries behind: len=%d total=%d", cart.Len(), cart.Total())
	}
}
