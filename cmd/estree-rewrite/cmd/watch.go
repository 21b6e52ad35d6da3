package cmd

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/seuros/gopher-estree/internal/watch"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Retransform a source file whenever it changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchOutput == "" {
			return fmt.Errorf("--output is required in watch mode")
		}

		pipeline, err := buildPipeline()
		if err != nil {
			pterm.Warning.Printfln("invalid plugin config, passing source through unchanged: %v", err)
			pipeline = nil
		}

		shutdown, err := setupTelemetry()
		if err != nil {
			return err
		}
		defer shutdown()

		file := args[0]
		watcher, err := watch.New(file, func() error {
			source, err := afero.ReadFile(appFs, file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}

			output := string(source)
			changed := false
			if pipeline != nil {
				out, summary, err := pipeline.Process(context.Background(), file, string(source))
				if err != nil {
					pterm.Warning.Printfln("%s: transform skipped: %v", file, err)
				}
				output = out
				changed = summary.Changed
			}

			if err := afero.WriteFile(appFs, watchOutput, []byte(output), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", watchOutput, err)
			}
			reportResult(file, changed)
			return nil
		})
		if err != nil {
			return err
		}
		defer watcher.Stop()

		pterm.Info.Printfln("Watching %s, writing to %s", file, watchOutput)
		return watcher.Start()
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "File to write transformed output to")
	rootCmd.AddCommand(watchCmd)
}
