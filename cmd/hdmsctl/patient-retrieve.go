package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/carevault/hdms-in-go/pkg/audit"
	"github.com/carevault/hdms-in-go/pkg/authz"
	"github.com/carevault/hdms-in-go/pkg/model"
)

// patientRetrieveCmd represents the patient retrieve command
var patientRetrieveCmd = &cobra.Command{
	Use:   "retrieve <patient-id>",
	Short: "Retrieve every visit for a patient",
	Long: `Retrieve every visit record for a patient, in table order.

Example:
  hdmsctl patient retrieve P001`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := retrievePatient(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to retrieve patient: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	patientCmd.AddCommand(patientRetrieveCmd)
}

func retrievePatient(cmd *cobra.Command, patientID string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	sess, err := a.requireOperation(authz.OpRetrieve)
	if err != nil {
		return err
	}

	s, err := a.openStore()
	if err != nil {
		return err
	}
	visits := s.RetrieveVisits(patientID)

	if err := a.auditLog.Log(audit.NewRetrieveEvent(sess.Identity, patientID)); err != nil {
		return err
	}

	if len(visits) == 0 {
		fmt.Printf("No visits found for patient %s\n", patientID)
		return nil
	}
	renderVisits(visits)
	return nil
}

func renderVisits(visits []model.VisitRecord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, col := range model.Columns {
		fmt.Fprintf(w, "%s\t", col)
	}
	fmt.Fprintln(w)
	for _, visit := range visits {
		for _, field := range visit.Row() {
			fmt.Fprintf(w, "%s\t", field)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
