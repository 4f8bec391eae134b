// Package engine is the composition root: it assembles agent shells, their
// delegation rosters, and the telemetry sink from configuration. In local
// mode all four shells live in one process; in remote mode each sub-agent is
// reached through its HTTP client, matching a one-process-per-agent
// deployment.
package engine

import (
	"fmt"
	"sort"

	"github.com/germanamz/relay/pkg/agents"
	"github.com/germanamz/relay/pkg/agents/remote"
	"github.com/germanamz/relay/pkg/classify"
	"github.com/germanamz/relay/pkg/telemetry"
	"github.com/germanamz/relay/pkg/tools/advmathtool"
	"github.com/germanamz/relay/pkg/tools/mathtool"
	"github.com/germanamz/relay/pkg/tools/toolbox"
	"github.com/germanamz/relay/pkg/tools/weathertool"
)

// Engine builds agents from configuration and owns the telemetry sink.
type Engine struct {
	cfg       Config
	recorder  telemetry.Recorder
	sink      *telemetry.Sink
	evaluator *advmathtool.Evaluator
}

// New creates an Engine. It validates the config, opens the telemetry sink
// when one is configured, and registers the configured custom operations.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg, recorder: telemetry.Nop{}, evaluator: advmathtool.New()}

	if cfg.Telemetry.TracesFile != "" {
		sink, err := telemetry.NewSink(cfg.Telemetry.TracesFile)
		if err != nil {
			return nil, err
		}
		e.sink = sink
		e.recorder = sink
	}

	for _, op := range cfg.CustomOps {
		factor := op.Factor
		e.evaluator.Register(op.Name, func(x float64) float64 { return x * factor })
	}

	return e, nil
}

// Close flushes and closes the telemetry sink, if any.
func (e *Engine) Close() error {
	if e.sink == nil {
		return nil
	}
	return e.sink.Close()
}

// Build assembles the named agent with its delegation roster.
func (e *Engine) Build(name string) (agents.Agent, error) {
	switch name {
	case "router":
		return agents.NewRouter(e.routerRoster(), e.recorder), nil
	case "weather":
		return agents.NewWeather(e.recorder), nil
	case "calculator":
		return agents.NewCalculator(e.evaluator, e.calculatorRoster(), e.recorder), nil
	case "advanced_calculator":
		return agents.NewAdvancedCalculator(e.evaluator, e.recorder), nil
	default:
		return nil, fmt.Errorf("engine: unknown agent %q", name)
	}
}

// Card returns the static self-description served for the named agent.
func (e *Engine) Card(name string) (remote.Card, error) {
	version := e.cfg.Version
	if version == "" {
		version = "1.0.0"
	}

	switch name {
	case "router":
		return remote.Card{
			Name:        "router",
			Description: "Supervisor agent that routes queries to weather and calculator specialists",
			Version:     version,
		}, nil
	case "weather":
		return remote.Card{
			Name:        "weather",
			Description: "Specialist agent for current weather readings",
			Version:     version,
			Skills:      toolNames(weathertool.Toolbox()),
		}, nil
	case "calculator":
		return remote.Card{
			Name:        "calculator",
			Description: "Specialist agent for arithmetic, unit conversion, and percentages",
			Version:     version,
			Skills:      toolNames(mathtool.Toolbox()),
		}, nil
	case "advanced_calculator":
		return remote.Card{
			Name:        "advanced_calculator",
			Description: "Specialist agent for advanced math: roots, trig, logarithms, custom operations",
			Version:     version,
			Skills:      toolNames(e.evaluator.Toolbox()),
		}, nil
	default:
		return remote.Card{}, fmt.Errorf("engine: unknown agent %q", name)
	}
}

// AgentNames lists the agents the engine can build.
func AgentNames() []string {
	return []string{"router", "weather", "calculator", "advanced_calculator"}
}

func (e *Engine) routerRoster() agents.Roster {
	if e.cfg.Mode == ModeRemote {
		return agents.Roster{
			classify.Weather:    remote.New(e.cfg.Remotes["weather"]),
			classify.Calculator: remote.New(e.cfg.Remotes["calculator"]),
		}
	}

	return agents.Roster{
		classify.Weather:    agents.NewWeather(e.recorder),
		classify.Calculator: agents.NewCalculator(e.evaluator, e.calculatorRoster(), e.recorder),
	}
}

func (e *Engine) calculatorRoster() agents.Roster {
	if e.cfg.Mode == ModeRemote {
		return agents.Roster{
			classify.AdvancedCalculator: remote.New(e.cfg.Remotes["advanced_calculator"]),
		}
	}

	return agents.Roster{
		classify.AdvancedCalculator: agents.NewAdvancedCalculator(e.evaluator, e.recorder),
	}
}

func toolNames(tb *toolbox.ToolBox) []string {
	tools := tb.Tools()

	names := make([]string, 0, len(tools))
	for _, t := range tools {
		names = append(names, t.Name)
	}
	sort.Strings(names)

	return names
}
