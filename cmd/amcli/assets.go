package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"assetcore/pkg/client"
	"assetcore/pkg/format"
)

var assetQuery client.AssetQuery

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List assets, optionally searched or filtered",
	RunE: func(cmd *cobra.Command, args []string) error {
		assets, err := api.Assets(cmd.Context(), assetQuery)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ASSET ID\tNAME\tCATEGORY\tSTATUS\tLOCATION\tPURCHASED\tPRICE")
		for _, a := range assets {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				a.AssetID, a.Name, format.Label(a.Category), format.Label(a.Status),
				a.Location, format.Date(a.PurchaseDate), format.Currency(a.PurchasePrice))
		}
		return w.Flush()
	},
}

func init() {
	assetsCmd.Flags().StringVar(&assetQuery.Search, "search", "", "match against name, asset id or description")
	assetsCmd.Flags().StringVar(&assetQuery.Category, "category", "", "filter by category")
	assetsCmd.Flags().StringVar(&assetQuery.Status, "status", "", "filter by status")
	assetsCmd.Flags().StringVar(&assetQuery.Location, "location", "", "filter by location")
	assetsCmd.Flags().StringVar(&assetQuery.Department, "department", "", "filter by department")
}
