package eval

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Render formats a summary as a styled terminal report.
func Render(s Summary) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Trace report"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d hops, %d user queries", s.Events, s.Roots)))
	b.WriteString("\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-22s %6s %10s %12s %12s", "agent", "hops", "delegated", "mean", "max")))
	b.WriteString("\n")

	for _, a := range s.Agents {
		b.WriteString(fmt.Sprintf("%-22s %6d %10d %12s %12s\n",
			a.Agent, a.Hops, a.Delegated,
			roundLatency(a.MeanLatency), roundLatency(a.MaxLatency)))
	}

	return b.String()
}

func roundLatency(d time.Duration) string {
	return d.Round(10 * time.Microsecond).String()
}
