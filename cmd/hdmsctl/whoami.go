package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/authz"
)

// whoamiCmd represents the whoami command
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session identity",
	Run: func(cmd *cobra.Command, args []string) {
		if err := whoami(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read session: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	sess, err := a.sessions.Current()
	if err != nil {
		return err
	}

	fmt.Printf("Username: %s\n", sess.Identity.Username)
	fmt.Printf("Role:     %s\n", sess.Identity.Role)
	fmt.Printf("Expires:  %s\n", sess.ExpiresAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Permitted operations: %v\n", authz.Permitted(sess.Identity.Role))
	return nil
}
