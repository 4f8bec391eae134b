package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/germanamz/relay/pkg/engine"
	"github.com/germanamz/relay/pkg/server"
)

func loadConfig() (engine.Config, error) {
	if configPath == "" {
		return engine.DefaultConfig(), nil
	}
	return engine.LoadConfig(configPath)
}

func serveCmd() *cobra.Command {
	var (
		agentName string
		port      int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Host one agent over HTTP",
		Long: "Host the named agent on the given port, serving POST /query and the\n" +
			"agent card at the well-known discovery path. Run one process per agent\n" +
			"for a distributed deployment.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			eng, err := engine.New(cfg)
			if err != nil {
				return err
			}
			defer eng.Close()

			agent, err := eng.Build(agentName)
			if err != nil {
				return err
			}

			card, err := eng.Card(agentName)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			addr := fmt.Sprintf(":%d", port)
			logger.Info("serving agent", "agent", agentName, "addr", addr, "mode", string(cfg.Mode))

			return server.New(agent, card).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&agentName, "agent", "a", "router",
		"agent to host: "+strings.Join(engine.AgentNames(), ", "))
	cmd.Flags().IntVarP(&port, "port", "p", 8000, "port to listen on")

	return cmd
}
