package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/audit"
	"github.com/carevault/hdms-in-go/pkg/session"
)

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session",
	Run: func(cmd *cobra.Command, args []string) {
		if err := logout(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to log out: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

func logout(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	sess, err := a.sessions.Current()
	if errors.Is(err, session.ErrNoSession) {
		fmt.Println("No active session.")
		return nil
	}
	if err != nil && !errors.Is(err, session.ErrInvalidSession) {
		return err
	}

	if err := a.sessions.End(); err != nil {
		return err
	}
	if sess != nil {
		if err := a.auditLog.Log(audit.NewLogoutEvent(sess.Identity)); err != nil {
			return err
		}
		fmt.Printf("Logged out %s\n", sess.Identity.Username)
	} else {
		fmt.Println("Cleared stale session.")
	}
	return nil
}
