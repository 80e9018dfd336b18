package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/audit"
	"github.com/carevault/hdms-in-go/pkg/authz"
	"github.com/carevault/hdms-in-go/pkg/report"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Generate key statistics over the whole record store",
	Long: `Generate aggregate key statistics: total visits, unique patients,
age range, and visit counts by department and demographic bucket.

Example:
  hdmsctl stats
  hdmsctl stats --export statistics.xlsx`,
	Run: func(cmd *cobra.Command, args []string) {
		export, _ := cmd.Flags().GetString("export")

		if err := generateStats(cmd, export); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate statistics: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringP("export", "e", "", "Also write the report to an Excel workbook")
}

func generateStats(cmd *cobra.Command, export string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	sess, err := a.requireOperation(authz.OpStats)
	if err != nil {
		return err
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}
	rep := report.Build(s.Snapshot())

	if err := a.auditLog.Log(audit.NewStatsEvent(sess.Identity)); err != nil {
		return err
	}

	if err := rep.Render(os.Stdout); err != nil {
		return err
	}
	if export != "" {
		if err := rep.ExportXLSX(export); err != nil {
			return err
		}
		fmt.Printf("\nReport written to %s\n", export)
	}
	return nil
}
