// amcli is a terminal dashboard for the asset management API.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"assetcore/pkg/client"
)

var (
	serverURL string
	api       *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "amcli",
	Short: "Asset management dashboard",
	Long:  "amcli browses assets, work orders and fleet metrics from the asset management API.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		api = client.New(serverURL)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOr("AMCLI_SERVER", "http://localhost:8080"), "base URL of the API server")
	rootCmd.AddCommand(assetsCmd)
	rootCmd.AddCommand(workOrdersCmd)
	rootCmd.AddCommand(metricsCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
