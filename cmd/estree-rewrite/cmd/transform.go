package cmd

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/seuros/gopher-estree/src/plugin"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	writeInPlace bool
	outputPath   string
)

var transformCmd = &cobra.Command{
	Use:   "transform <file> [file...]",
	Short: "Apply the configured rewrite rules to source files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if outputPath != "" && (writeInPlace || len(args) > 1) {
			return fmt.Errorf("--output takes a single input file and cannot be combined with --write")
		}

		pipeline, err := buildPipeline()
		if err != nil {
			// A broken config never fails the host: warn and emit the
			// sources unchanged.
			pterm.Warning.Printfln("invalid plugin config, passing sources through unchanged: %v", err)
			pipeline = nil
		}

		shutdown, err := setupTelemetry()
		if err != nil {
			return err
		}
		defer shutdown()

		for _, file := range args {
			if err := transformFile(cmd, pipeline, file); err != nil {
				return err
			}
		}
		return nil
	},
}

func transformFile(cmd *cobra.Command, pipeline *plugin.Pipeline, file string) error {
	source, err := afero.ReadFile(appFs, file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}

	output := string(source)
	changed := false
	if pipeline != nil {
		out, summary, err := pipeline.Process(context.Background(), file, string(source))
		if err != nil {
			// Pass-through: report but keep going with the original source.
			pterm.Warning.Printfln("%s: transform skipped: %v", file, err)
		}
		output = out
		changed = summary.Changed
	}

	switch {
	case writeInPlace:
		if err := afero.WriteFile(appFs, file, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", file, err)
		}
		reportResult(file, changed)
	case outputPath != "":
		if err := afero.WriteFile(appFs, outputPath, []byte(output), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		reportResult(file, changed)
	default:
		fmt.Fprintln(cmd.OutOrStdout(), output)
	}
	return nil
}

func reportResult(file string, changed bool) {
	if changed {
		pterm.Success.Printfln("%s: rewritten", file)
	} else {
		pterm.Info.Printfln("%s: unchanged", file)
	}
}

func buildPipeline() (*plugin.Pipeline, error) {
	cfg := plugin.DefaultConfig()
	if cfgFile != "" {
		loaded, err := plugin.LoadConfig(appFs, cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	logging := plugin.DefaultLoggingConfig()
	if level := plugin.ParseLogLevel(logLevel); level != plugin.LogLevelOff {
		logging = plugin.NewConsoleLoggingConfig(level)
	}

	return plugin.NewPipeline(cfg, logging, nil)
}

func setupTelemetry() (func(), error) {
	if !telemetry {
		return func() {}, nil
	}
	shutdown, err := plugin.SetupStdoutTelemetry()
	if err != nil {
		return nil, err
	}
	return func() {
		_ = shutdown(context.Background())
	}, nil
}

func init() {
	transformCmd.Flags().BoolVarP(&writeInPlace, "write", "w", false, "Rewrite files in place")
	transformCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write output to a file instead of stdout")
	rootCmd.AddCommand(transformCmd)
}
