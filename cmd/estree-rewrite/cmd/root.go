package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	logLevel  string
	telemetry bool
)

// appFs is swapped for an in-memory filesystem in tests.
var appFs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "estree-rewrite",
	Short: "Source-to-source JavaScript rewrite engine",
	Long: `estree-rewrite parses a JavaScript-subset source file, applies the
configured rewrite rules to its syntax tree and prints the result.

The default rule set replaces the first argument of every console.*
call with the string literal "from_plugin".`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Plugin config file (JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "off", "Log level: debug, info, warn, error, off")
	rootCmd.PersistentFlags().BoolVar(&telemetry, "telemetry", false, "Emit OpenTelemetry traces and metrics to stdout")
}
