package utils

import (
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
)

// ==================== UUID & TOKEN ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateSessionToken() uuid.UUID {
	return uuid.New()
}

// ==================== BOOKING REFERENCE ====================

const (
	referencePrefix  = "PNR"
	referenceLength  = 10
	referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateBookingReference mints a human-shareable booking code: a fixed
// prefix plus a random uppercase alphanumeric suffix from crypto/rand.
// Stateless per call; uniqueness is enforced by the bookings table and the
// reservation retry loop.
func GenerateBookingReference() string {
	suffix := make([]byte, referenceLength)
	max := big.NewInt(int64(len(referenceCharset)))
	for i := range suffix {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails if the OS entropy source is broken;
			// nothing sensible to do but stop.
			panic(err)
		}
		suffix[i] = referenceCharset[n.Int64()]
	}
	return referencePrefix + string(suffix)
}
