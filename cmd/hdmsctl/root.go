package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hdmsctl",
	Short: "Hospital data management system",
	Long:  `Command-line interface for the hospital data management system.`,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable diagnostic logging")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
