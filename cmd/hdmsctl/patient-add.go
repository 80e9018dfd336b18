package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/audit"
	"github.com/carevault/hdms-in-go/pkg/authz"
	"github.com/carevault/hdms-in-go/pkg/model"
)

// patientAddCmd represents the patient add command
var patientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a patient visit record",
	Long: `Add one visit record to the patient record store.

Every field is required; the command reports each missing field by name
and leaves the store unchanged.

Example:
  hdmsctl patient add --patient-id P001 --visit-id V100 \
    --visit-time "2024-01-05 09:30:00" --visit-department ER \
    --race White --gender F --ethnicity "Not Hispanic" --age 42 \
    --zip-code 02115 --insurance Medicare \
    --chief-complaint "Chest pain" --note-id N88 --note-type Triage`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := addPatient(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to add patient: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	patientCmd.AddCommand(patientAddCmd)
	for _, col := range model.Columns {
		patientAddCmd.Flags().String(flagName(col), "", col)
	}
}

// flagName turns a column name into its flag: Patient_ID -> patient-id.
func flagName(col string) string {
	return strings.ReplaceAll(strings.ToLower(col), "_", "-")
}

func addPatient(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	sess, err := a.requireOperation(authz.OpAdd)
	if err != nil {
		return err
	}

	fields := map[string]string{}
	for _, col := range model.Columns {
		value, _ := cmd.Flags().GetString(flagName(col))
		fields[col] = value
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}
	rec, err := s.AddRecord(fields)
	if err != nil {
		return err
	}

	if err := a.auditLog.Log(audit.NewAddEvent(sess.Identity, rec.PatientID, rec.VisitID)); err != nil {
		return err
	}

	fmt.Printf("Added visit %s for patient %s\n", rec.VisitID, rec.PatientID)
	return nil
}
