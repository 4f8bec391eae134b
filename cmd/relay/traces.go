package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/germanamz/relay/pkg/eval"
)

func exportCmd() *cobra.Command {
	var (
		tracesPath string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export telemetry traces to CSV",
		Long:  "Convert a JSONL trace file into the CSV layout offline judge tooling ingests.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := eval.Load(tracesPath)
			if err != nil {
				return err
			}

			if dir := filepath.Dir(outputPath); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("export: %w", err)
				}
			}

			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			defer f.Close()

			if err := eval.WriteCSV(f, events); err != nil {
				return err
			}

			logger.Info("exported traces", "events", len(events), "output", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tracesPath, "traces", "t", "traces.jsonl", "JSONL trace file to read")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "traces.csv", "CSV file to write")

	return cmd
}

func reportCmd() *cobra.Command {
	var tracesPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize telemetry traces",
		Long:  "Aggregate a JSONL trace file per agent and print a styled report.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			events, err := eval.Load(tracesPath)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), eval.Render(eval.Summarize(events)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&tracesPath, "traces", "t", "traces.jsonl", "JSONL trace file to read")

	return cmd
}
