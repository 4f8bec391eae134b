package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/germanamz/relay/pkg/tools/mcpclient"
)

func toolsCmd() *cobra.Command {
	var server []string

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Inspect or call tools on an external MCP server",
	}

	cmd.PersistentFlags().StringSliceVarP(&server, "server", "s", []string{"relay", "mcp"},
		"MCP server command and arguments, comma separated")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the tools an MCP server exposes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(server) == 0 {
				return errors.New("tools: --server must name a command")
			}

			client, err := mcpclient.New(cmd.Context(), server[0], server[1:]...)
			if err != nil {
				return err
			}
			defer client.Close()

			tools, err := client.Tools(cmd.Context())
			if err != nil {
				return err
			}

			for _, tool := range tools {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tool.Name, tool.Description)
			}
			return nil
		},
	}

	call := &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Call a tool on an MCP server and print its output",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(server) == 0 {
				return errors.New("tools: --server must name a command")
			}

			arguments := json.RawMessage(`{}`)
			if len(args) == 2 {
				if !json.Valid([]byte(args[1])) {
					return fmt.Errorf("tools: arguments are not valid JSON: %s", args[1])
				}
				arguments = json.RawMessage(args[1])
			}

			client, err := mcpclient.New(cmd.Context(), server[0], server[1:]...)
			if err != nil {
				return err
			}
			defer client.Close()

			out, err := client.Call(cmd.Context(), args[0], arguments)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.AddCommand(list, call)

	return cmd
}
