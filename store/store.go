// Package store owns the persisted profile and booking ledger. In-memory
// state is loaded once at startup and stays authoritative for the session;
// every mutation writes back to the persistence backend on a best-effort
// basis (a failed write is logged, never surfaced).
package store

import (
	"encoding/json"
	"errors"
	"log"
	"sync"

	"fixuno-backend/models"
)

// ErrIllegalTransition is returned when a status update would move a booking
// backwards or skip a state.
var ErrIllegalTransition = errors.New("illegal booking status transition")

// Store holds the single user profile and the global booking ledger,
// newest-first.
type Store struct {
	mu       sync.RWMutex
	backend  Persistence
	user     *models.User
	bookings []models.Booking
}

func New(backend Persistence) *Store {
	return &Store{backend: backend}
}

// Load reads the profile and ledger from the backend. Absent keys yield a
// nil profile and an empty ledger; malformed stored JSON is treated the same
// way. Load never fails startup.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.bookings = nil

	if raw, ok, err := s.backend.Get(KeyUser); err != nil {
		log.Printf("[STORE] failed to read %s: %v", KeyUser, err)
	} else if ok {
		var u models.User
		if err := json.Unmarshal([]byte(raw), &u); err != nil {
			log.Printf("[STORE] discarding malformed %s: %v", KeyUser, err)
		} else {
			s.user = &u
		}
	}

	if raw, ok, err := s.backend.Get(KeyBookings); err != nil {
		log.Printf("[STORE] failed to read %s: %v", KeyBookings, err)
	} else if ok {
		var bookings []models.Booking
		if err := json.Unmarshal([]byte(raw), &bookings); err != nil {
			log.Printf("[STORE] discarding malformed %s: %v", KeyBookings, err)
		} else {
			s.bookings = bookings
		}
	}
}

// Profile returns a copy of the remembered user, or nil when no booking has
// ever been made.
func (s *Store) Profile() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Bookings returns a deep copy of the whole ledger, newest-first.
func (s *Store) Bookings() []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneBookings(s.bookings)
}

// BookingsForPhone filters the ledger down to one phone number. Phone is the
// de facto identity key; there is no authentication.
func (s *Store) BookingsForPhone(phone string) []models.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserPhone == phone {
			out = append(out, b.Clone())
		}
	}
	return out
}

// FindBooking returns a copy of the booking with the given id.
func (s *Store) FindBooking(id string) (models.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b.Clone(), true
		}
	}
	return models.Booking{}, false
}

// CommitBooking prepends the booking to the ledger and overwrites the
// profile with the booking's user fields. Both keys are written; if the
// second write fails after the first succeeded that is acceptable, there is
// no cross-key transaction.
func (s *Store) CommitBooking(b models.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b = b.Clone()
	s.bookings = append([]models.Booking{b}, s.bookings...)
	s.user = &models.User{
		Name:            b.UserName,
		Phone:           b.UserPhone,
		Address:         b.UserAddress,
		LastBookingDate: b.Date,
	}
	s.persistBookings()
	s.persistUser()
}

// UpdateStatus applies a forward-only status transition. An unknown id is a
// no-op (found=false, no error). An illegal transition leaves the booking
// untouched and returns ErrIllegalTransition.
func (s *Store) UpdateStatus(bookingID string, newStatus models.BookingStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID != bookingID {
			continue
		}
		if !models.CanTransition(s.bookings[i].Status, newStatus) {
			return true, ErrIllegalTransition
		}
		s.bookings[i].Status = newStatus
		s.persistBookings()
		return true, nil
	}
	return false, nil
}

// DeleteBooking removes the booking from the ledger. Confirmation is the
// caller's job; the store deletes unconditionally.
func (s *Store) DeleteBooking(bookingID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.bookings {
		if s.bookings[i].ID == bookingID {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			s.persistBookings()
			return true
		}
	}
	return false
}

// GetValue and SetValue expose the backend for auxiliary keys (the tracker
// counter). They bypass the in-memory ledger entirely.
func (s *Store) GetValue(key string) (string, bool) {
	v, ok, err := s.backend.Get(key)
	if err != nil {
		log.Printf("[STORE] failed to read %s: %v", key, err)
		return "", false
	}
	return v, ok
}

func (s *Store) SetValue(key, value string) {
	if err := s.backend.Set(key, value); err != nil {
		log.Printf("[STORE] failed to persist %s: %v", key, err)
	}
}

// persistBookings and persistUser require s.mu held.
func (s *Store) persistBookings() {
	raw, err := json.Marshal(s.bookings)
	if err != nil {
		log.Printf("[STORE] failed to encode ledger: %v", err)
		return
	}
	if err := s.backend.Set(KeyBookings, string(raw)); err != nil {
		log.Printf("[STORE] failed to persist %s: %v", KeyBookings, err)
	}
}

func (s *Store) persistUser() {
	raw, err := json.Marshal(s.user)
	if err != nil {
		log.Printf("[STORE] failed to encode profile: %v", err)
		return
	}
	if err := s.backend.Set(KeyUser, string(raw)); err != nil {
		log.Printf("[STORE] failed to persist %s: %v", KeyUser, err)
	}
}

func cloneBookings(in []models.Booking) []models.Booking {
	out := make([]models.Booking, len(in))
	for i, b := range in {
		out[i] = b.Clone()
	}
	return out
}
