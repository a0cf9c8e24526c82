// Package ledger holds the in-memory, append-only booking store.
// Bookings live for one process lifetime only; there is no persistence.
package ledger

import (
	"crypto/rand"
	"sync"
	"time"

	"voyago/internal/domain"
)

const (
	codePrefix  = "H"
	codeLength  = 6
	codeCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Ledger is the process-wide booking store. Appends and the confirmation
// code uniqueness check happen under one lock, so no two bookings can ever
// share a code and a completed insert is visible to every later read.
type Ledger struct {
	mu       sync.RWMutex
	bookings []domain.Booking
	codes    map[string]struct{}
	now      func() time.Time
}

func New() *Ledger {
	return &Ledger{
		codes: make(map[string]struct{}),
		now:   time.Now,
	}
}

// Insert assigns a fresh confirmation code and creation timestamp, appends
// the booking, and returns the stored record. Callers validate first; a
// booking handed to Insert is always recorded.
func (l *Ledger) Insert(b domain.Booking) domain.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	code := newCode()
	for {
		if _, taken := l.codes[code]; !taken {
			break
		}
		code = newCode()
	}

	b.Confirmation = code
	b.CreatedAt = l.now().UTC()

	l.codes[code] = struct{}{}
	l.bookings = append(l.bookings, b)
	return b
}

// List returns all bookings newest-first. The returned slice is a copy and
// safe to hold across later inserts.
func (l *Ledger) List() []domain.Booking {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Booking, len(l.bookings))
	for i, b := range l.bookings {
		out[len(l.bookings)-1-i] = b
	}
	return out
}

// Len returns the number of stored bookings.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.bookings)
}

// newCode builds a confirmation code: fixed prefix plus 6 random uppercase
// base36 characters. Not a security credential, just collision-resistant
// enough for a demo ledger; Insert still checks and regenerates on clash.
func newCode() string {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}

	code := make([]byte, 0, len(codePrefix)+codeLength)
	code = append(code, codePrefix...)
	for _, b := range buf {
		code = append(code, codeCharset[int(b)%len(codeCharset)])
	}
	return string(code)
}
