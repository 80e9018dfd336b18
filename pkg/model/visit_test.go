package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validFields() map[string]string {
	return map[string]string{
		"Patient_ID":       "P001",
		"Visit_ID":         "V100",
		"Visit_time":       "2024-01-05 09:30:00",
		"Visit_department": "ER",
		"Race":             "White",
		"Gender":           "F",
		"Ethnicity":        "Not Hispanic",
		"Age":              "42",
		"Zip_code":         "02115",
		"Insurance":        "Medicare",
		"Chief_complaint":  "Chest pain",
		"Note_ID":          "N88",
		"Note_type":        "Triage",
	}
}

func TestVisitFromFields(t *testing.T) {
	rec, err := VisitFromFields(validFields())
	require.NoError(t, err)
	assert.Equal(t, "P001", rec.PatientID)
	assert.Equal(t, "V100", rec.VisitID)
	assert.Equal(t, "ER", rec.VisitDepartment)
	assert.Equal(t, "Triage", rec.NoteType)
}

func TestVisitFromFields_MissingFieldsNamed(t *testing.T) {
	fields := validFields()
	fields["Gender"] = ""
	delete(fields, "Insurance")

	_, err := VisitFromFields(fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Gender")
	assert.Contains(t, err.Error(), "Insurance")
}

func TestVisitFromFields_BadVisitTime(t *testing.T) {
	fields := validFields()
	fields["Visit_time"] = "Jan 5 2024"

	_, err := VisitFromFields(fields)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Visit_time")
}

func TestVisitFromRow_WrongFieldCount(t *testing.T) {
	_, err := VisitFromRow([]string{"P001", "V100"})
	assert.Error(t, err)
}

func TestVisitRowRoundTrip(t *testing.T) {
	rec, err := VisitFromFields(validFields())
	require.NoError(t, err)

	again, err := VisitFromRow(rec.Row())
	require.NoError(t, err)
	assert.Equal(t, rec, again)
}

func TestParseVisitTime(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "date only", value: "2024-01-05"},
		{name: "date and time", value: "2024-01-05 09:30:00"},
		{name: "garbage", value: "not a date", wantErr: true},
		{name: "bad month", value: "2024-13-05", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseVisitTime(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVisitDate_IgnoresTimeOfDay(t *testing.T) {
	rec := VisitRecord{VisitTime: "2024-01-05 23:59:59"}
	d, err := rec.VisitDate()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), d)
}
