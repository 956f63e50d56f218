package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"assetcore/pkg/format"
)

var workOrderAssetID int

var workOrdersCmd = &cobra.Command{
	Use:   "work-orders",
	Short: "List work orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		orders, err := api.WorkOrders(cmd.Context(), workOrderAssetID)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER ID\tTITLE\tTYPE\tPRIORITY\tSTATUS\tASSIGNED\tSCHEDULED")
		for _, o := range orders {
			assigned := "-"
			if o.AssignedTo != nil {
				assigned = *o.AssignedTo
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				o.WorkOrderID, o.Title, format.Label(o.Type), format.Label(o.Priority),
				format.Label(o.Status), assigned, format.Date(o.ScheduledDate))
		}
		return w.Flush()
	},
}

func init() {
	workOrdersCmd.Flags().IntVar(&workOrderAssetID, "asset", 0, "only work orders for this asset id")
}
