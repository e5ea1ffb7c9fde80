// Package codes generates the human-facing reference codes used for
// orders and support tickets (ORDER-20250901-7KQ2M3, TICKET-20250901-XJ4P9W).
package codes

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"
)

var ErrInvalidLength = errors.New("invalid code length")

const (
	OrderPrefix  = "ORDER"
	TicketPrefix = "TICKET"

	// SuffixLength is the length of the random part of a reference.
	SuffixLength = 6

	// Uppercase alphanumeric excluding ambiguous characters (0/O, 1/I/L).
	charsetUpperAlphanumeric = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
)

// GenerateOrderReference creates a reference for a new order,
// e.g. "ORDER-20250901-7KQ2M3".
func GenerateOrderReference(at time.Time) (string, error) {
	return generateReference(OrderPrefix, at)
}

// GenerateTicketReference creates a reference for a new support ticket,
// e.g. "TICKET-20250901-XJ4P9W".
func GenerateTicketReference(at time.Time) (string, error) {
	return generateReference(TicketPrefix, at)
}

func generateReference(prefix string, at time.Time) (string, error) {
	suffix, err := randomFromCharset(SuffixLength, charsetUpperAlphanumeric)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s-%s", prefix, at.UTC().Format("20060102"), suffix), nil
}

// randomFromCharset generates a cryptographically random string of the
// given length from the charset.
func randomFromCharset(length int, charset string) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate random index: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

// ShortID returns the part of a reference shown to people in chat headers
// and bot replies: everything after the first dash ("20250901-7KQ2M3").
func ShortID(reference string) string {
	for i := 0; i < len(reference); i++ {
		if reference[i] == '-' {
			return reference[i+1:]
		}
	}
	return reference
}
