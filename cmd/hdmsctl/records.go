package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// recordsCmd represents the records command
var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Record store utilities",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'records' requires a subcommand (watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}
