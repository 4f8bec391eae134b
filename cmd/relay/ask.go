package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/germanamz/relay/pkg/engine"
)

func askCmd() *cobra.Command {
	var agentName string

	cmd := &cobra.Command{
		Use:   "ask [query...]",
		Short: "Send one query through an agent",
		Long: "Build the named agent (router by default) and run a single query\n" +
			"through it. With the default local config the whole delegation chain\n" +
			"runs in-process.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("ask: a query is required")
			}
			query := strings.Join(args, " ")

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

			response, err := agent.Handle(cmd.Context(), query)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), response)
			return nil
		},
	}

	cmd.Flags().StringVarP(&agentName, "agent", "a", "router", "agent to query")

	return cmd
}
