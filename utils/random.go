// utils/random.go
package utils

import "crypto/rand"

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns an uppercase alphanumeric code of length n.
func GenerateRandomString(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("failed to read random bytes")
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf)
}

// GenerateBookingID mints the human-shareable booking code, e.g.
// FIX-8K2Q9ZD4M.
func GenerateBookingID() string {
	return "FIX-" + GenerateRandomString(9)
}
