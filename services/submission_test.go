package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"fixuno-backend/models"
	"fixuno-backend/store"
)

type fakeNotifier struct {
	sent []BookingNotice
	err  error
}

func (f *fakeNotifier) Send(notice BookingNotice) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, notice)
	return nil
}

func newTestFlow(t *testing.T, notifier Notifier) (*SubmissionService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryPersistence())
	st.Load()
	flow := NewSubmissionService(st, notifier)
	flow.newID = func() string { return "FIX-TEST00001" }
	flow.now = func() time.Time { return time.Date(2026, 8, 28, 14, 5, 30, 0, time.UTC) }
	return flow, st
}

func loadedCart() *models.Cart {
	cart := &models.Cart{}
	sub := models.SubService{ID: "ac-gas", Name: "AC Gas Charge (up to 1.5 ton)", Price: 2499}
	cart.AddItem(sub, "AC Service & Repair")
	cart.AddItem(sub, "AC Service & Repair")
	return cart
}

func validInput() SubmissionInput {
	return SubmissionInput{Name: "Asha", Phone: "9876543210", Address: "12 MG Road"}
}

func TestValidateRejectsBadPhone(t *testing.T) {
	flow, _ := newTestFlow(t, &fakeNotifier{})

	for _, phone := range []string{"12345", "98765432101", "98765abc10", ""} {
		input := validInput()
		input.Phone = phone
		errs := flow.Validate(input)
		if errs == nil || errs["phone"] == "" {
			t.Errorf("phone %q should fail validation", phone)
		}
	}

	// Whitespace is stripped before the 10-digit check.
	input := validInput()
	input.Phone = "98765 43210"
	if errs := flow.Validate(input); errs != nil {
		t.Errorf("spaced phone should pass, got %v", errs)
	}
}

func TestValidateRequiresAllFields(t *testing.T) {
	flow, _ := newTestFlow(t, &fakeNotifier{})

	input := validInput()
	input.Name = "  "
	input.Address = ""
	errs := flow.Validate(input)
	if errs["name"] == "" || errs["address"] == "" {
		t.Errorf("blank name/address should both error, got %v", errs)
	}
}

func TestSubmitFieldErrorsDoNotTouchState(t *testing.T) {
	notifier := &fakeNotifier{}
	flow, st := newTestFlow(t, notifier)
	cart := loadedCart()

	input := validInput()
	input.Phone = "bad"
	_, fieldErrs, err := flow.Submit(cart, input)
	if fieldErrs == nil || err != nil {
		t.Fatalf("expected field errors, got errs=%v err=%v", fieldErrs, err)
	}
	if cart.Len() == 0 {
		t.Error("cart must survive a validation failure")
	}
	if len(st.Bookings()) != 0 || len(notifier.sent) != 0 {
		t.Error("nothing should be committed or sent on validation failure")
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	flow, _ := newTestFlow(t, &fakeNotifier{})

	_, fieldErrs, err := flow.Submit(&models.Cart{}, validInput())
	if fieldErrs != nil || !errors.Is(err, ErrEmptyCart) {
		t.Errorf("expected ErrEmptyCart, got errs=%v err=%v", fieldErrs, err)
	}
}

func TestSubmitCommitsClearsAndNotifies(t *testing.T) {
	notifier := &fakeNotifier{}
	flow, st := newTestFlow(t, notifier)
	flow.strictNotify = true // synchronous send so the fake records before we assert
	cart := loadedCart()

	booking, fieldErrs, err := flow.Submit(cart, validInput())
	if fieldErrs != nil || err != nil {
		t.Fatalf("submit failed: errs=%v err=%v", fieldErrs, err)
	}

	if booking.ID != "FIX-TEST00001" {
		t.Errorf("unexpected booking id %q", booking.ID)
	}
	if booking.Status != models.StatusPending {
		t.Errorf("new booking must be Pending, got %s", booking.Status)
	}
	if booking.Total != 4998 {
		t.Errorf("expected total 4998, got %d", booking.Total)
	}
	if cart.Len() != 0 {
		t.Error("cart must be cleared after commit")
	}

	ledger := st.Bookings()
	if len(ledger) != 1 || ledger[0].ID != booking.ID {
		t.Fatalf("booking not committed: %+v", ledger)
	}
	if p := st.Profile(); p == nil || p.Phone != "9876543210" {
		t.Errorf("profile not rewritten from booking: %+v", p)
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(notifier.sent))
	}
	notice := notifier.sent[0]
	if !strings.Contains(notice.Services, "AC Gas Charge (up to 1.5 ton) (x2)") {
		t.Errorf("notice summary wrong: %q", notice.Services)
	}
}

func TestSubmitSnapshotIsIndependentOfCart(t *testing.T) {
	flow, st := newTestFlow(t, &fakeNotifier{})
	cart := loadedCart()

	booking, _, err := flow.Submit(cart, validInput())
	if err != nil {
		t.Fatal(err)
	}

	// New selections after the booking must not rewrite history.
	cart.AddItem(models.SubService{ID: "mw-drilling", Name: "Drill & Hang (per item)", Price: 99}, "Minor Home Repairs")
	cart.SetQuantity("mw-drilling", 7)

	stored, ok := st.FindBooking(booking.ID)
	if !ok {
		t.Fatal("booking missing from ledger")
	}
	if len(stored.Items) != 1 || stored.Total != 4998 {
		t.Errorf("stored booking changed after cart mutation: %+v", stored)
	}
}

func TestStrictNotifyFailureBlocksCommit(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("network down")}
	flow, st := newTestFlow(t, notifier)
	flow.strictNotify = true
	cart := loadedCart()

	_, fieldErrs, err := flow.Submit(cart, validInput())
	if fieldErrs != nil || !errors.Is(err, ErrNotifyFailed) {
		t.Fatalf("expected ErrNotifyFailed, got errs=%v err=%v", fieldErrs, err)
	}

	// Retryable: cart, ledger and profile all untouched.
	if cart.Len() == 0 {
		t.Error("cart must be kept for retry")
	}
	if len(st.Bookings()) != 0 || st.Profile() != nil {
		t.Error("nothing may be committed when strict notification fails")
	}
}

func TestBestEffortNotifyFailureStillCommits(t *testing.T) {
	notifier := &fakeNotifier{err: errors.New("network down")}
	flow, st := newTestFlow(t, notifier)
	flow.strictNotify = false
	cart := loadedCart()

	_, fieldErrs, err := flow.Submit(cart, validInput())
	if fieldErrs != nil || err != nil {
		t.Fatalf("best-effort mode must not surface notify failure: errs=%v err=%v", fieldErrs, err)
	}
	if len(st.Bookings()) != 1 {
		t.Error("booking must commit regardless of notification outcome")
	}
	if cart.Len() != 0 {
		t.Error("cart must be cleared")
	}
}

func TestDateUsesLocaleStyleFormat(t *testing.T) {
	flow, _ := newTestFlow(t, &fakeNotifier{})
	cart := loadedCart()

	booking, _, err := flow.Submit(cart, validInput())
	if err != nil {
		t.Fatal(err)
	}
	if booking.Date != "28/8/2026, 2:05:30 pm" {
		t.Errorf("unexpected date format: %q", booking.Date)
	}
}
