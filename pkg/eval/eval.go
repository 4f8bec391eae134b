// Package eval consumes exported telemetry offline: it loads JSONL trace
// files, aggregates per-agent statistics, renders a terminal report, and
// exports rows in the CSV shape downstream judge tooling expects. Nothing
// here feeds back into the serving path.
package eval

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/germanamz/relay/pkg/telemetry"
)

// Load reads events from a JSONL trace file. Blank lines are skipped;
// a malformed line fails the load rather than being silently dropped.
func Load(path string) ([]telemetry.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("eval: open traces: %w", err)
	}
	defer f.Close()

	var events []telemetry.Event

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var e telemetry.Event
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return nil, fmt.Errorf("eval: parse traces line %d: %w", line, err)
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("eval: read traces: %w", err)
	}

	return events, nil
}

// AgentStats aggregates all hops handled by one agent.
type AgentStats struct {
	Agent       string
	Hops        int
	Delegated   int // hops that arrived via delegation from another agent
	MeanLatency time.Duration
	MaxLatency  time.Duration
}

// Summary is the full aggregate over a trace file.
type Summary struct {
	Events int
	Roots  int // hops with no parent, i.e. end-user queries
	Agents []AgentStats
}

// Summarize aggregates events per agent. Agents are sorted by hop count,
// busiest first, with ties broken by name.
func Summarize(events []telemetry.Event) Summary {
	type acc struct {
		hops      int
		delegated int
		total     time.Duration
		max       time.Duration
	}

	byAgent := make(map[string]*acc)
	roots := 0

	for _, e := range events {
		if e.ParentID == "" {
			roots++
		}

		a, ok := byAgent[e.Agent]
		if !ok {
			a = &acc{}
			byAgent[e.Agent] = a
		}

		a.hops++
		if e.ParentID != "" {
			a.delegated++
		}
		a.total += e.Latency
		if e.Latency > a.max {
			a.max = e.Latency
		}
	}

	s := Summary{Events: len(events), Roots: roots}
	for name, a := range byAgent {
		s.Agents = append(s.Agents, AgentStats{
			Agent:       name,
			Hops:        a.hops,
			Delegated:   a.delegated,
			MeanLatency: a.total / time.Duration(a.hops),
			MaxLatency:  a.max,
		})
	}

	sort.Slice(s.Agents, func(i, j int) bool {
		if s.Agents[i].Hops != s.Agents[j].Hops {
			return s.Agents[i].Hops > s.Agents[j].Hops
		}
		return s.Agents[i].Agent < s.Agents[j].Agent
	})

	return s
}
