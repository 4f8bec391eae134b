package telemetry

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Sink appends events to a JSONL file from a background goroutine. Record
// never blocks the caller: if the buffer is full the event is dropped rather
// than stalling an agent.
type Sink struct {
	ch   chan Event
	done chan struct{}

	mu     sync.Mutex
	closed bool

	f *os.File
	w *bufio.Writer
}

// NewSink opens (or creates) the JSONL file at path in append mode and starts
// the writer goroutine.
func NewSink(path string) (*Sink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("telemetry: open sink: %w", err)
	}

	s := &Sink{
		ch:   make(chan Event, 256),
		done: make(chan struct{}),
		f:    f,
		w:    bufio.NewWriter(f),
	}

	go s.run()

	return s, nil
}

// Record queues an event for export. Events offered after Close, or while the
// buffer is full, are dropped.
func (s *Sink) Record(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	select {
	case s.ch <- e:
	default:
	}
}

// Close drains pending events, flushes, and closes the file.
func (s *Sink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.ch)
	<-s.done

	if err := s.w.Flush(); err != nil {
		s.f.Close()
		return fmt.Errorf("telemetry: flush sink: %w", err)
	}

	return s.f.Close()
}

func (s *Sink) run() {
	defer close(s.done)

	enc := json.NewEncoder(s.w)
	for e := range s.ch {
		// Encode errors leave the sink running; one bad event should not
		// stop the export of the rest.
		_ = enc.Encode(e)
	}
}
