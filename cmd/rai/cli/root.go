// Package cli implements the rai command-line tool: a thin wrapper around the
// SDK that reads JSON arguments, runs one operation, and prints the result.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	rai "github.com/raihq/rai-go"
	"github.com/raihq/rai-go/internal/monitoring"
	"github.com/raihq/rai-go/pkg/constants"
)

var (
	configPath string
	baseURL    string
	logLevel   string
)

// rootCmd represents the base command when the `rai` binary is called without
// any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rai",
	Short: "A CLI for querying the Rai inventory-tracking API.",
	Long: `rai is a command-line interface for running inventory operations against
the Rai API: queries, inserts, updates, deletes, and aggregations, each
expressed as Mongo-style JSON arguments.`,
	SilenceUsage: true,
}

// Execute is the main entry point for the CLI application. It parses the
// command-line arguments and executes the appropriate subcommand.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a rai config file (default: ./rai.yaml plus RAI_* env)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the configured API base URL")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", string(constants.LogLevelWarn), "SDK log level (debug, info, warn, error)")
}

// newClient loads the configuration and constructs a client for one command
// invocation.
func newClient() (*rai.Client, error) {
	var (
		cfg *rai.Config
		err error
	)
	if configPath != "" {
		cfg, err = rai.LoadConfigFile(configPath)
	} else {
		cfg, err = rai.LoadConfig()
	}
	if err != nil {
		return nil, err
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return rai.NewClient(*cfg,
		rai.WithLogger(monitoring.NewZapLogger(constants.LogLevel(logLevel))),
	)
}

// parseJSON decodes one JSON command-line argument.
func parseJSON[T any](arg, what string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(arg), &v); err != nil {
		return v, fmt.Errorf("invalid %s %q: %w", what, arg, err)
	}
	return v, nil
}

// printResult renders an operation result as indented JSON on stdout.
func printResult(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
