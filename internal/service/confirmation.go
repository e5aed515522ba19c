package service

import (
	"crypto/rand"
)

// Confirmation codes are shared over the phone and written on paper, so the
// alphabet drops 0/1/O/I. 32^6 combinations make collisions improbable; the
// unique index on bookings.confirmation_code is the authority and the caller
// retries on a collision.
const (
	confirmationPrefix   = "HHS-"
	confirmationAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
	confirmationLength   = 6
)

// GenerateConfirmationCode samples a human-shareable booking reference.
func GenerateConfirmationCode() (string, error) {
	buf := make([]byte, confirmationLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	code := make([]byte, confirmationLength)
	for i, b := range buf {
		// 32 characters divide 256 evenly, no modulo bias
		code[i] = confirmationAlphabet[int(b)%len(confirmationAlphabet)]
	}
	return confirmationPrefix + string(code), nil
}
