// Package runid generates the trace ids attached to JSON reports.
package runid

import (
	"sync"

	"github.com/google/uuid"
)

// Generator produces one id per report run.
type Generator interface {
	Generate() string
}

// UUIDv7Generator issues time-ordered UUIDs, so ids from later runs sort after
// earlier ones.
type UUIDv7Generator struct{}

func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator replays a preset list of ids. Golden tests use it to keep
// trace_id stable.
type FixedGenerator struct {
	mu   sync.Mutex
	ids  []string
	next int
}

func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate panics once the preset ids run out.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.next == len(g.ids) {
		panic("runid: no preset ids left")
	}
	id := g.ids[g.next]
	g.next++
	return id
}
