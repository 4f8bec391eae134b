package eval

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/germanamz/relay/pkg/telemetry"
)

// csvHeader matches the column layout judge tooling ingests.
var csvHeader = []string{"id", "model_input", "response", "trace_name", "latency_ms", "agent_name", "timestamp"}

// WriteCSV exports events as CSV rows. Hops with an empty output are skipped:
// there is nothing for a judge to score.
func WriteCSV(w io.Writer, events []telemetry.Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("eval: write csv header: %w", err)
	}

	for _, e := range events {
		if e.Output == "" {
			continue
		}

		row := []string{
			e.ID,
			e.Input,
			e.Output,
			"agent-query",
			strconv.FormatInt(e.Latency.Milliseconds(), 10),
			e.Agent,
			e.StartedAt.UTC().Format(time.RFC3339Nano),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("eval: write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("eval: flush csv: %w", err)
	}

	return nil
}
