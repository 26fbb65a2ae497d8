package order

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

const NumberPrefix = "ORD-"

type NumberGenerator interface {
	Next(now time.Time) string
}

// ULIDNumbers yields lexically sortable, collision-resistant order numbers.
type ULIDNumbers struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func NewULIDNumbers() *ULIDNumbers {
	return &ULIDNumbers{entropy: ulid.Monotonic(rand.Reader, 0)}
}

func (g *ULIDNumbers) Next(now time.Time) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return NumberPrefix + ulid.MustNew(ulid.Timestamp(now), g.entropy).String()
}
