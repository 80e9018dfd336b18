package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// patientCmd represents the patient command
var patientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage patient visit records",
	Long:  `Retrieve, add, and remove patient visit records.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'patient' requires a subcommand (retrieve, add, remove)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(patientCmd)
}
