package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/audit"
	"github.com/carevault/hdms-in-go/pkg/authn"
	"github.com/carevault/hdms-in-go/pkg/authz"
	"github.com/carevault/hdms-in-go/pkg/identity"
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as a member of hospital staff",
	Long: `Log in against the credential source and start a session.

The session lasts until logout or until the configured TTL expires.
Failed attempts are recorded in the usage log under the invalid-user
sentinel.

Example:
  hdmsctl login -u nurse1 -p secret`,
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if err := login(cmd, username, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to log in: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("username", "u", "", "Username")
	loginCmd.Flags().StringP("password", "p", "", "Password")
	_ = loginCmd.MarkFlagRequired("username")
	_ = loginCmd.MarkFlagRequired("password")
}

func login(cmd *cobra.Command, username, password string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	cred, err := authn.Authenticate(a.cfg.CredentialsFile, username, password)
	if err != nil {
		return err
	}
	if cred == nil {
		if err := a.auditLog.Log(audit.NewLoginEvent(nil, false)); err != nil {
			return err
		}
		return fmt.Errorf("invalid credentials")
	}

	id := identity.FromCredential(cred)
	sess, err := a.sessions.Begin(id)
	if err != nil {
		return err
	}
	if err := a.auditLog.Log(audit.NewLoginEvent(id, true)); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", id.Username, id.Role)
	if ops := authz.Permitted(id.Role); len(ops) > 0 {
		fmt.Printf("Permitted operations: %v\n", ops)
	} else {
		fmt.Println("Role holds no permissions; contact an administrator.")
	}
	fmt.Printf("Session expires %s\n", sess.ExpiresAt.Format("2006-01-02 15:04:05"))
	return nil
}
