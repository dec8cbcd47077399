// Command lpa-frontend serves the LPA case management pages and the stub
// Sirius server used by the browser tests.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gotrs-io/lpa-frontend/internal/config"
	"github.com/gotrs-io/lpa-frontend/internal/version"
)

var (
	configDir   string
	configFile  string
	versionJSON bool
)

var rootCmd = &cobra.Command{
	Use:           "lpa-frontend",
	Short:         "LPA case management frontend",
	Version:       version.String(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "config", "Directory holding default.yaml")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Single config file to load instead of --config-dir")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mockServerCmd)
	rootCmd.AddCommand(convertPactCmd)
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print build metadata as JSON")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		if versionJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(version.GetInfo())
		}

		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		return nil
	},
}

// loadConfig reads --config when given, otherwise the watched --config-dir.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.LoadFromFile(configFile)
	}
	if err := config.Load(configDir); err != nil {
		return nil, err
	}
	return config.Get(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
