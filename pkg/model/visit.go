package model

import (
	"fmt"
	"time"

	"github.com/hengadev/errsx"
)

// Columns is the canonical column order of the records file. Every row,
// the header included, follows this order.
var Columns = []string{
	"Patient_ID",
	"Visit_ID",
	"Visit_time",
	"Visit_department",
	"Race",
	"Gender",
	"Ethnicity",
	"Age",
	"Zip_code",
	"Insurance",
	"Chief_complaint",
	"Note_ID",
	"Note_type",
}

// Visit time layouts accepted in the records file, tried in order.
var visitTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// VisitRecord is one row of the patient visit table. A patient may have any
// number of visits; Visit_ID is meant to be unique per visit. VisitTime is
// kept verbatim so a row survives a load/persist cycle byte for byte.
type VisitRecord struct {
	PatientID       string
	VisitID         string
	VisitTime       string
	VisitDepartment string
	Race            string
	Gender          string
	Ethnicity       string
	Age             string
	ZipCode         string
	Insurance       string
	ChiefComplaint  string
	NoteID          string
	NoteType        string
}

// VisitFromFields builds a VisitRecord from submitted field values keyed by
// column name. Every column is required; the returned error names each
// missing field. The visit time must parse as a date or date+time.
func VisitFromFields(fields map[string]string) (VisitRecord, error) {
	var errs errsx.Map
	for _, col := range Columns {
		if fields[col] == "" {
			errs.Set(col, fmt.Sprintf("%s is required", col))
		}
	}
	if t := fields["Visit_time"]; t != "" {
		if _, err := ParseVisitTime(t); err != nil {
			errs.Set("Visit_time", err)
		}
	}
	if !errs.IsEmpty() {
		return VisitRecord{}, errs.AsError()
	}
	return visitFromRow([]string{
		fields["Patient_ID"],
		fields["Visit_ID"],
		fields["Visit_time"],
		fields["Visit_department"],
		fields["Race"],
		fields["Gender"],
		fields["Ethnicity"],
		fields["Age"],
		fields["Zip_code"],
		fields["Insurance"],
		fields["Chief_complaint"],
		fields["Note_ID"],
		fields["Note_type"],
	}), nil
}

func visitFromRow(row []string) VisitRecord {
	return VisitRecord{
		PatientID:       row[0],
		VisitID:         row[1],
		VisitTime:       row[2],
		VisitDepartment: row[3],
		Race:            row[4],
		Gender:          row[5],
		Ethnicity:       row[6],
		Age:             row[7],
		ZipCode:         row[8],
		Insurance:       row[9],
		ChiefComplaint:  row[10],
		NoteID:          row[11],
		NoteType:        row[12],
	}
}

// VisitFromRow builds a VisitRecord from a raw records-file row. The row
// must have exactly len(Columns) fields.
func VisitFromRow(row []string) (VisitRecord, error) {
	if len(row) != len(Columns) {
		return VisitRecord{}, fmt.Errorf("expected %d fields, got %d", len(Columns), len(row))
	}
	return visitFromRow(row), nil
}

// Row returns the record's fields in canonical column order.
func (v VisitRecord) Row() []string {
	return []string{
		v.PatientID,
		v.VisitID,
		v.VisitTime,
		v.VisitDepartment,
		v.Race,
		v.Gender,
		v.Ethnicity,
		v.Age,
		v.ZipCode,
		v.Insurance,
		v.ChiefComplaint,
		v.NoteID,
		v.NoteType,
	}
}

// VisitDate returns the calendar-date component of the visit time.
func (v VisitRecord) VisitDate() (time.Time, error) {
	t, err := ParseVisitTime(v.VisitTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ParseVisitTime parses a visit time value, with or without a time of day.
func ParseVisitTime(s string) (time.Time, error) {
	for _, layout := range visitTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid visit time %q", s)
}
