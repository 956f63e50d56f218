package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show fleet, work order and maintenance metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		assets, err := api.AssetMetrics(ctx)
		if err != nil {
			return err
		}
		orders, err := api.WorkOrderMetrics(ctx)
		if err != nil {
			return err
		}
		maint, err := api.MaintenanceMetrics(ctx)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ASSETS")
		fmt.Fprintf(w, "  total\t%d\n", assets.TotalAssets)
		fmt.Fprintf(w, "  active\t%d\n", assets.ActiveAssets)
		fmt.Fprintf(w, "  maintenance\t%d\n", assets.MaintenanceAssets)
		fmt.Fprintf(w, "  retired\t%d\n", assets.RetiredAssets)
		fmt.Fprintln(w, "WORK ORDERS")
		fmt.Fprintf(w, "  total\t%d\n", orders.TotalWorkOrders)
		fmt.Fprintf(w, "  open\t%d\n", orders.OpenWorkOrders)
		fmt.Fprintf(w, "  in progress\t%d\n", orders.InProgressWorkOrders)
		fmt.Fprintf(w, "  completed\t%d\n", orders.CompletedWorkOrders)
		fmt.Fprintf(w, "  overdue\t%d\n", orders.OverdueWorkOrders)
		fmt.Fprintln(w, "MAINTENANCE")
		fmt.Fprintf(w, "  scheduled\t%d\n", maint.TotalScheduled)
		fmt.Fprintf(w, "  upcoming\t%d\n", maint.Upcoming)
		fmt.Fprintf(w, "  overdue\t%d\n", maint.Overdue)
		fmt.Fprintf(w, "  completed this month\t%d\n", maint.CompletedThisMonth)
		return w.Flush()
	},
}
