package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/germanamz/relay/pkg/tools/advmathtool"
	"github.com/germanamz/relay/pkg/tools/mathtool"
	"github.com/germanamz/relay/pkg/tools/mcpserver"
	"github.com/germanamz/relay/pkg/tools/toolbox"
	"github.com/germanamz/relay/pkg/tools/weathertool"
)

func mcpCmd() *cobra.Command {
	var toolsets []string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve relay toolsets over MCP stdio",
		Long: "Expose the selected toolsets to an MCP client over stdin/stdout,\n" +
			"bypassing the agent shells entirely.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv := mcpserver.New("relay-tools", version)

			for _, name := range toolsets {
				tb, err := toolboxByName(name)
				if err != nil {
					return err
				}
				srv.RegisterToolBox(tb)
			}

			logger.Info("serving MCP", "toolsets", strings.Join(toolsets, ","))
			return srv.Serve(cmd.Context(), os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringSliceVarP(&toolsets, "tools", "t", []string{"basic", "advanced", "weather"},
		"toolsets to expose: basic, advanced, weather")

	return cmd
}

func toolboxByName(name string) (*toolbox.ToolBox, error) {
	switch name {
	case "basic":
		return mathtool.Toolbox(), nil
	case "advanced":
		return advmathtool.New().Toolbox(), nil
	case "weather":
		return weathertool.Toolbox(), nil
	default:
		return nil, fmt.Errorf("unknown toolset %q", name)
	}
}
