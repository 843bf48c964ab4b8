package models

// User is the single remembered profile for the current storefront client.
// There is no account system; the phone number is the de facto identity key
// and the record is overwritten wholesale on every successful booking.
type User struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	LastBookingDate string `json:"lastBookingDate,omitempty"`
}
