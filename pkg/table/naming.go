package table

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Namer generates names for tables derived by algebra operators, so a
// result can always serve as input to further operators without name
// collisions within a run.
type Namer interface {
	Derive(base string) string
}

// CounterNamer appends a monotonically increasing counter to the base
// name. The counter is atomic, so concurrent table derivation is safe.
type CounterNamer struct {
	count atomic.Uint64
}

// NewCounterNamer creates a counter-backed name generator starting at 1.
func NewCounterNamer() *CounterNamer {
	return &CounterNamer{}
}

func (n *CounterNamer) Derive(base string) string {
	return fmt.Sprintf("%s_%d", base, n.count.Add(1))
}

// UUIDNamer suffixes the base name with a random UUID, trading readable
// names for uniqueness across runs (useful when derived tables get
// snapshotted).
type UUIDNamer struct{}

func (UUIDNamer) Derive(base string) string {
	return base + "_" + uuid.NewString()
}

// defaultNamer names derived tables when no generator is injected.
var defaultNamer Namer = NewCounterNamer()
