// Command conlang is the operator CLI: it serves the API, manages the schema,
// mints editor tokens and runs rulebook files through the engines offline.
//
// Exit codes: 0 = success, 1 = error (including `check` finding errors).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/conlang-backend/internal/app"
	"github.com/heartmarshall/conlang-backend/internal/config"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// options are the persistent flags shared by every subcommand.
type options struct {
	configPath string
	jsonOutput bool
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "conlang",
		Short: "Constructed language rule engine",
		Long: `conlang serves the pronunciation and declension API and runs the same
engines offline against a YAML rulebook.

Database commands (serve, migrate) read the server configuration;
rulebook commands (pronounce, decline, check) need no database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML, defaults to $CONFIG_PATH or ./config.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Print results as JSON")

	cmd.AddCommand(
		serveCmd(opts),
		migrateCmd(opts),
		tokenCmd(opts),
		pronounceCmd(opts),
		declineCmd(opts),
		checkCmd(opts),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "conlang %s\n", app.BuildVersion())
		},
	}
}

// loadConfig resolves --config, then $CONFIG_PATH, then ./config.yaml.
func (o *options) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	return config.LoadFile(path)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
