package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/carevault/hdms-in-go/pkg/model"
)

func sampleRecords() []model.VisitRecord {
	return []model.VisitRecord{
		{PatientID: "P1", VisitID: "V1", VisitTime: "2024-01-05", VisitDepartment: "ER", Race: "White", Gender: "F", Ethnicity: "Not Hispanic", Age: "42", Insurance: "Medicare"},
		{PatientID: "P1", VisitID: "V2", VisitTime: "2024-01-06", VisitDepartment: "Cardiology", Race: "Black", Gender: "M", Ethnicity: "Hispanic", Age: "64", Insurance: "Private"},
		{PatientID: "P2", VisitID: "V3", VisitTime: "2024-01-05", VisitDepartment: "ER", Race: "White", Gender: "F", Ethnicity: "Not Hispanic", Age: "23", Insurance: "Medicaid"},
	}
}

func TestBuild(t *testing.T) {
	r := Build(sampleRecords())

	assert.Equal(t, 3, r.TotalVisits)
	assert.Equal(t, 2, r.UniquePatients)
	assert.Equal(t, map[string]int{"ER": 2, "Cardiology": 1}, r.ByDepartment)
	assert.Equal(t, map[string]int{"F": 2, "M": 1}, r.ByGender)
	assert.Equal(t, map[string]int{"White": 2, "Black": 1}, r.ByRace)
	assert.Equal(t, map[string]int{"Not Hispanic": 2, "Hispanic": 1}, r.ByEthnicity)
	assert.Equal(t, map[string]int{"Medicare": 1, "Private": 1, "Medicaid": 1}, r.ByInsurance)

	assert.Equal(t, 3, r.AgeKnown)
	assert.Equal(t, 23, r.AgeMin)
	assert.Equal(t, 64, r.AgeMax)
	assert.InDelta(t, 43.0, r.AgeMean, 0.01)
}

func TestBuild_Empty(t *testing.T) {
	r := Build(nil)
	assert.Equal(t, 0, r.TotalVisits)
	assert.Equal(t, 0, r.UniquePatients)
	assert.Equal(t, 0, r.AgeKnown)
}

func TestBuild_SkipsUnparseableAges(t *testing.T) {
	records := sampleRecords()
	records[1].Age = "unknown"

	r := Build(records)
	assert.Equal(t, 2, r.AgeKnown)
	assert.Equal(t, 42, r.AgeMax)
}

func TestRender(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Build(sampleRecords()).Render(&buf))

	out := buf.String()
	assert.Contains(t, out, "Total visits: 3")
	assert.Contains(t, out, "Unique patients: 2")
	assert.Contains(t, out, "Visits by Department")
	assert.Contains(t, out, "Cardiology")
	assert.Contains(t, out, "Visits by Insurance")
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.xlsx")
	require.NoError(t, Build(sampleRecords()).ExportXLSX(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	metric, err := f.GetCellValue(exportSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Metric", metric)

	total, err := f.GetCellValue(exportSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "3", total)

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)

	flat := make(map[string]string)
	for _, row := range rows {
		if len(row) >= 2 {
			flat[row[0]] = row[1]
		}
	}
	assert.Equal(t, "2", flat["Unique patients"])
	assert.Equal(t, "2", flat["ER"])
	assert.Equal(t, "1", flat["Cardiology"])
	assert.Contains(t, flat, "Visits by Gender")
}
