package trace

import (
	"sync"

	"github.com/google/uuid"
)

// Operation names carried by Event.Op.
const (
	OpRunStart   = "run.start"
	OpRunDone    = "run.done"
	OpBirth      = "flare.birth"
	OpMerge      = "flare.merge"
	OpDeath      = "flare.death"
	OpCollapse   = "flare.collapse"
	OpEntity     = "entity.classified"
	OpNotFound   = "entity.not_found"
	OpInvariant  = "invariant.violation"
	OpValidation = "weights.invalid"
)

// Event is one structured diagnostic record.
// Flare is an arena slot or result index; -1 when not applicable.
type Event struct {
	RunID  string
	Op     string
	Node   string
	Flare  int
	Value  float64
	Detail string
}

// Recorder receives events. Implementations must be safe for concurrent use.
type Recorder interface {
	Record(Event)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(Event)

// Record calls f(e).
func (f RecorderFunc) Record(e Event) { f(e) }

// Nop discards every event.
type Nop struct{}

// Record does nothing.
func (Nop) Record(Event) {}

// OrNop returns r, or Nop when r is nil.
func OrNop(r Recorder) Recorder {
	if r == nil {
		return Nop{}
	}

	return r
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Collector stores events in memory.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

// Record appends e.
func (c *Collector) Record(e Event) {
	c.mu.Lock()
	c.events = append(c.events, e)
	c.mu.Unlock()
}

// Events returns a copy of the recorded events in arrival order.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]Event(nil), c.events...)
}

// Count returns how many events carry op.
func (c *Collector) Count(op string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, e := range c.events {
		if e.Op == op {
			n++
		}
	}

	return n
}

// Reset drops all recorded events.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.events = nil
	c.mu.Unlock()
}

// Multi dispatches every event to all recorders in order.
type Multi []Recorder

// Record forwards e to each non-nil recorder.
func (m Multi) Record(e Event) {
	for _, r := range m {
		if r != nil {
			r.Record(e)
		}
	}
}
