package models

// BookingStatus moves strictly forward: Pending -> Confirmed -> Completed.
type BookingStatus string

const (
	StatusPending   BookingStatus = "Pending"
	StatusConfirmed BookingStatus = "Confirmed"
	StatusCompleted BookingStatus = "Completed"
)

// ValidStatus reports whether s is one of the known booking statuses.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a booking may move from one status to the
// next. Transitions never skip a state and never go backwards.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed
	case StatusConfirmed:
		return to == StatusCompleted
	}
	return false
}

// Booking is an immutable record of one submitted service request. Items and
// the user fields are deep snapshots taken at submission time, so later cart
// or profile edits never rewrite history.
type Booking struct {
	ID          string        `json:"id"`
	Date        string        `json:"date"` // locale-formatted creation timestamp
	Items       []CartItem    `json:"items"`
	Total       int           `json:"total"`
	Status      BookingStatus `json:"status"`
	UserName    string        `json:"userName"`
	UserPhone   string        `json:"userPhone"`
	UserAddress string        `json:"userAddress"`
}

// Clone returns a deep copy of the booking.
func (b Booking) Clone() Booking {
	out := b
	out.Items = make([]CartItem, len(b.Items))
	copy(out.Items, b.Items)
	return out
}
