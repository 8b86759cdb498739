package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Exam report commands",
	}

	cmd.AddCommand(newReportListCmd())
	cmd.AddCommand(newReportShowCmd())

	return cmd
}

func newReportListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List exam report summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ReportList

			if err := client.Get("/api/proctor/reports", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newReportShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <report-id>",
		Short: "Show a full exam report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ReportDetail

			if err := client.Get(fmt.Sprintf("/api/proctor/reports/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
