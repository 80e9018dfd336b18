package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/audit"
	"github.com/carevault/hdms-in-go/pkg/authz"
)

// visitsCmd represents the visits command
var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "Query visit totals",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'visits' requires a subcommand (count)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// visitsCountCmd represents the visits count command
var visitsCountCmd = &cobra.Command{
	Use:   "count <YYYY-MM-DD>",
	Short: "Count visits on a calendar date",
	Long: `Count visit records whose visit time falls on the given date.
Time of day is ignored.

Example:
  hdmsctl visits count 2024-01-05`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := countVisits(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to count visits: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(visitsCmd)
	visitsCmd.AddCommand(visitsCountCmd)
}

func countVisits(cmd *cobra.Command, dateStr string) error {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("invalid date %q, want YYYY-MM-DD", dateStr)
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	sess, err := a.requireOperation(authz.OpCount)
	if err != nil {
		return err
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}
	total := s.CountVisits(date)

	if err := a.auditLog.Log(audit.NewCountEvent(sess.Identity, dateStr)); err != nil {
		return err
	}

	fmt.Printf("Total visits on %s: %d\n", dateStr, total)
	return nil
}
