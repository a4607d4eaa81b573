package services

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IdentifierGenerator produces the human-facing unique identifiers:
// tracking IDs like "CRR-MCK3X2Q1-7F4A" and invoice numbers like
// "INV-MCK3X2Q1-7F4A". Both combine a base36 millisecond timestamp with a
// random suffix, so collisions require two generations in the same
// millisecond drawing the same four characters. The stores still carry
// unique indexes as the backstop.
type IdentifierGenerator struct {
	now func() time.Time
}

// NewIdentifierGenerator creates a generator using the wall clock.
func NewIdentifierGenerator() IdentifierGenerator {
	return IdentifierGenerator{now: time.Now}
}

// NewIdentifierGeneratorWithClock creates a generator with an injected
// clock, for tests.
func NewIdentifierGeneratorWithClock(now func() time.Time) IdentifierGenerator {
	return IdentifierGenerator{now: now}
}

// NewTrackingID returns a fresh tracking identifier.
func (g IdentifierGenerator) NewTrackingID() string {
	return g.generate("CRR")
}

// NewInvoiceNumber returns a fresh invoice number.
func (g IdentifierGenerator) NewInvoiceNumber() string {
	return g.generate("INV")
}

func (g IdentifierGenerator) generate(prefix string) string {
	timestamp := strings.ToUpper(strconv.FormatInt(g.now().UnixMilli(), 36))
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = idAlphabet[rand.IntN(len(idAlphabet))] //nolint:gosec // not a secret
	}
	return fmt.Sprintf("%s-%s-%s", prefix, timestamp, suffix)
}
