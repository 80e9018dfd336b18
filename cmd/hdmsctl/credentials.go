package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/authn"
)

// credentialsCmd represents the credentials command
var credentialsCmd = &cobra.Command{
	Use:   "credentials",
	Short: "Credential source utilities",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'credentials' requires a subcommand (hash)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// credentialsHashCmd represents the credentials hash command
var credentialsHashCmd = &cobra.Command{
	Use:   "hash <password>",
	Short: "Produce the argon2id form of a password",
	Long: `Produce the encoded argon2id hash of a password, for pasting into
the credential source in place of a plaintext value. The encoded form
contains commas, so quote it in the CSV:

  dora,"$argon2id$v=19$m=65536,t=3,p=2$...$...",clinician

Example:
  hdmsctl credentials hash s3cret`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		encoded, err := authn.HashPassword(args[0], nil)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to hash password: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(encoded)
	},
}

func init() {
	rootCmd.AddCommand(credentialsCmd)
	credentialsCmd.AddCommand(credentialsHashCmd)
}
