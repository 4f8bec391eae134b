// Package agents implements the agent shells: uniform request handlers that
// classify an incoming query, then either answer it locally with their tool
// set or forward it to a downstream capability. Delegation targets are looked
// up in a Roster, so a shell never cares whether its sub-agent runs in the
// same process or behind an HTTP hop.
package agents

import (
	"context"
	"time"

	"github.com/germanamz/relay/pkg/classify"
	"github.com/germanamz/relay/pkg/telemetry"
)

// Agent is the uniform contract: receive a query, produce a text response.
type Agent interface {
	Handle(ctx context.Context, query string) (string, error)
}

// Roster maps capabilities to the agents that serve them.
type Roster map[classify.Capability]Agent

// apology is the fixed reply when a downstream delegation fails. Delegation
// is never retried and the failure never reaches the end user as an error.
const apology = "I'm sorry, I was unable to complete that request. Please try again."

// DirectFunc composes a shell's local reply for queries that are not
// delegated. Tool failures are converted to explanatory text inside the
// composer, so it cannot fail.
type DirectFunc func(ctx context.Context, query string) string

// Shell wraps a classifier, a roster of delegation targets, and a direct
// reply composer behind the Agent contract. The shell holds no per-request
// state; a single instance serves any number of concurrent queries.
type Shell struct {
	name     string
	rules    []classify.Rule
	roster   Roster
	direct   DirectFunc
	recorder telemetry.Recorder
}

// NewShell creates a shell. A nil recorder discards telemetry.
func NewShell(name string, rules []classify.Rule, roster Roster, direct DirectFunc, rec telemetry.Recorder) *Shell {
	if rec == nil {
		rec = telemetry.Nop{}
	}

	return &Shell{
		name:     name,
		rules:    rules,
		roster:   roster,
		direct:   direct,
		recorder: rec,
	}
}

// Name returns the shell's agent name.
func (s *Shell) Name() string { return s.name }

// Handle classifies the query and either answers locally or forwards to the
// decided capability. A missing or failing downstream target yields an
// apologetic reply, never an error: the error return exists to satisfy
// transports that need one, and is always nil for a Shell.
func (s *Shell) Handle(ctx context.Context, query string) (string, error) {
	start := time.Now()
	hopID := telemetry.NewHopID()
	parent := telemetry.HopFromContext(ctx)

	response := s.respond(telemetry.WithHop(ctx, hopID), query)

	s.recorder.Record(telemetry.Event{
		ID:        hopID,
		ParentID:  parent,
		Agent:     s.name,
		Input:     query,
		Output:    response,
		StartedAt: start,
		Latency:   time.Since(start),
	})

	return response, nil
}

func (s *Shell) respond(ctx context.Context, query string) string {
	decision := classify.Classify(query, s.rules)
	if !decision.Delegate() {
		return s.direct(ctx, query)
	}

	target, ok := s.roster[decision.Capability]
	if !ok {
		return apology
	}

	response, err := target.Handle(ctx, decision.Query)
	if err != nil {
		return apology
	}

	return response
}
