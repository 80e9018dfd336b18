package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/audit"
	"github.com/carevault/hdms-in-go/pkg/authz"
)

// patientRemoveCmd represents the patient remove command
var patientRemoveCmd = &cobra.Command{
	Use:   "remove <patient-id>",
	Short: "Remove every visit for a patient",
	Long: `Remove every visit record matching the patient ID.

Removing a patient with no records is reported, not an error.

Example:
  hdmsctl patient remove P001`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := removePatient(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to remove patient: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	patientCmd.AddCommand(patientRemoveCmd)
}

func removePatient(cmd *cobra.Command, patientID string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	sess, err := a.requireOperation(authz.OpRemove)
	if err != nil {
		return err
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}
	removed, err := s.DeleteByPatientID(patientID)
	if err != nil {
		return err
	}

	if err := a.auditLog.Log(audit.NewRemoveEvent(sess.Identity, patientID)); err != nil {
		return err
	}

	if removed {
		fmt.Printf("Removed all visits for patient %s\n", patientID)
	} else {
		fmt.Printf("No visits found for patient %s\n", patientID)
	}
	return nil
}
