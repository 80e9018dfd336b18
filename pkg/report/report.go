package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/carevault/hdms-in-go/pkg/model"
)

// Report holds aggregate key statistics over the whole visit table.
type Report struct {
	TotalVisits    int
	UniquePatients int

	ByDepartment map[string]int
	ByGender     map[string]int
	ByRace       map[string]int
	ByEthnicity  map[string]int
	ByInsurance  map[string]int

	// Age statistics cover rows whose Age field parses as an integer.
	AgeKnown int
	AgeMin   int
	AgeMax   int
	AgeMean  float64
}

// Build computes a Report from a snapshot of the visit table. It is
// read-only: nothing is mutated or persisted.
func Build(records []model.VisitRecord) *Report {
	r := &Report{
		TotalVisits:  len(records),
		ByDepartment: map[string]int{},
		ByGender:     map[string]int{},
		ByRace:       map[string]int{},
		ByEthnicity:  map[string]int{},
		ByInsurance:  map[string]int{},
	}

	patients := map[string]struct{}{}
	ageSum := 0
	for _, rec := range records {
		patients[rec.PatientID] = struct{}{}
		r.ByDepartment[rec.VisitDepartment]++
		r.ByGender[rec.Gender]++
		r.ByRace[rec.Race]++
		r.ByEthnicity[rec.Ethnicity]++
		r.ByInsurance[rec.Insurance]++

		age, err := strconv.Atoi(rec.Age)
		if err != nil {
			continue
		}
		if r.AgeKnown == 0 || age < r.AgeMin {
			r.AgeMin = age
		}
		if r.AgeKnown == 0 || age > r.AgeMax {
			r.AgeMax = age
		}
		r.AgeKnown++
		ageSum += age
	}
	r.UniquePatients = len(patients)
	if r.AgeKnown > 0 {
		r.AgeMean = float64(ageSum) / float64(r.AgeKnown)
	}
	return r
}

// sections returns the categorical breakdowns in presentation order.
func (r *Report) sections() []struct {
	Title  string
	Counts map[string]int
} {
	return []struct {
		Title  string
		Counts map[string]int
	}{
		{"Visits by Department", r.ByDepartment},
		{"Visits by Gender", r.ByGender},
		{"Visits by Race", r.ByRace},
		{"Visits by Ethnicity", r.ByEthnicity},
		{"Visits by Insurance", r.ByInsurance},
	}
}

// sortedKeys returns the bucket names sorted for stable output.
func sortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Render writes the report as plain text.
func (r *Report) Render(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Key Statistics\n\nTotal visits: %d\nUnique patients: %d\n", r.TotalVisits, r.UniquePatients); err != nil {
		return err
	}
	if r.AgeKnown > 0 {
		if _, err := fmt.Fprintf(w, "Age: min %d, max %d, mean %.1f\n", r.AgeMin, r.AgeMax, r.AgeMean); err != nil {
			return err
		}
	}
	for _, section := range r.sections() {
		if _, err := fmt.Fprintf(w, "\n%s\n", section.Title); err != nil {
			return err
		}
		for _, key := range sortedKeys(section.Counts) {
			if _, err := fmt.Fprintf(w, "  %-24s %d\n", key, section.Counts[key]); err != nil {
				return err
			}
		}
	}
	return nil
}
