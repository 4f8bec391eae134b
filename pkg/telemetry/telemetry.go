// Package telemetry records one structured event per agent hop: which agent
// handled a query, what it answered, how long it took, and which hop it was
// delegated from. Events are exported by a background sink so recording never
// sits on a request's critical path.
package telemetry

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is one agent hop. ParentID links a delegated hop back to the hop that
// forwarded the query; it is empty for top-level hops.
type Event struct {
	ID        string        `json:"id"`
	ParentID  string        `json:"parent_id,omitempty"`
	Agent     string        `json:"agent_name"`
	Input     string        `json:"input_text"`
	Output    string        `json:"output_text"`
	StartedAt time.Time     `json:"timestamp"`
	Latency   time.Duration `json:"latency"`
}

// Recorder receives completed hop events.
type Recorder interface {
	Record(e Event)
}

// Nop is a Recorder that discards everything.
type Nop struct{}

func (Nop) Record(Event) {}

type hopKey struct{}

// NewHopID returns a fresh correlation id for a hop.
func NewHopID() string { return uuid.NewString() }

// WithHop returns a context carrying id as the current hop, making it the
// parent of any hop recorded beneath it.
func WithHop(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, hopKey{}, id)
}

// HopFromContext returns the current hop id, or "" when the context carries
// none.
func HopFromContext(ctx context.Context) string {
	id, _ := ctx.Value(hopKey{}).(string)
	return id
}
