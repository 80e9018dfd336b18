package store

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/carevault/hdms-in-go/pkg/model"
)

var (
	// ErrSourceUnavailable means the records source is missing or unreadable.
	ErrSourceUnavailable = errors.New("records source unavailable")

	// ErrBadHeader means the records source header does not match the
	// canonical column order.
	ErrBadHeader = errors.New("records source has unexpected header")
)

// Store owns the in-memory visit table for one records source and is the
// sole writer of that source for the lifetime of the process. Every
// mutation persists before it returns; on a persistence failure the
// in-memory change is rolled back and the store stays usable.
type Store struct {
	path    string
	records []model.VisitRecord
	log     *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// Open parses the records source fully into memory. A missing source is an
// error, not an empty table: starting empty would silently hide data loss.
// A malformed row or visit time fails the whole load, with line context.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path: path,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	s.records = records

	s.log.Info("opened records source",
		zap.String("path", path),
		zap.Int("records", len(records)),
	)
	return s, nil
}

// Len returns the number of rows in the table.
func (s *Store) Len() int {
	return len(s.records)
}

// RetrieveVisits returns every record whose patient ID matches exactly, in
// original table order. No match is an empty result, not an error.
func (s *Store) RetrieveVisits(patientID string) []model.VisitRecord {
	var visits []model.VisitRecord
	for _, rec := range s.records {
		if rec.PatientID == patientID {
			visits = append(visits, rec)
		}
	}
	return visits
}

// AddRecord validates the submitted fields, appends one row, and persists
// the table. The error for missing fields names every one of them. On a
// persistence failure the row is rolled back and the table is unchanged.
func (s *Store) AddRecord(fields map[string]string) (model.VisitRecord, error) {
	rec, err := model.VisitFromFields(fields)
	if err != nil {
		return model.VisitRecord{}, err
	}

	s.records = append(s.records, rec)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return model.VisitRecord{}, fmt.Errorf("failed to persist new record: %w", err)
	}

	s.log.Info("added visit record",
		zap.String("patient_id", rec.PatientID),
		zap.String("visit_id", rec.VisitID),
	)
	return rec, nil
}

// DeleteByPatientID removes every row matching the patient ID and persists
// the table. It returns false, with the table untouched, when nothing
// matched.
func (s *Store) DeleteByPatientID(patientID string) (bool, error) {
	kept := s.records[:0:0]
	removed := 0
	for _, rec := range s.records {
		if rec.PatientID == patientID {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	if removed == 0 {
		return false, nil
	}

	previous := s.records
	s.records = kept
	if err := s.persist(); err != nil {
		s.records = previous
		return false, fmt.Errorf("failed to persist removal: %w", err)
	}

	s.log.Info("removed visit records",
		zap.String("patient_id", patientID),
		zap.Int("removed", removed),
	)
	return true, nil
}

// CountVisits counts rows whose visit time falls on the given calendar
// date. Time of day is ignored; zero matches is a count of zero.
func (s *Store) CountVisits(date time.Time) int {
	count := 0
	for _, rec := range s.records {
		d, err := rec.VisitDate()
		if err != nil {
			// Rows are validated at load and add time.
			continue
		}
		if d.Year() == date.Year() && d.Month() == date.Month() && d.Day() == date.Day() {
			count++
		}
	}
	return count
}

// Snapshot returns a copy of the table in original order, for read-only
// aggregation.
func (s *Store) Snapshot() []model.VisitRecord {
	out := make([]model.VisitRecord, len(s.records))
	copy(out, s.records)
	return out
}

// ImportRecords bulk-loads every row of another records file into the table
// and persists once. The import file must carry the canonical header. It
// returns the number of rows imported; on any error, including persistence,
// the table is unchanged.
func (s *Store) ImportRecords(path string) (int, error) {
	imported, err := readRecords(path)
	if err != nil {
		return 0, err
	}
	if len(imported) == 0 {
		return 0, nil
	}

	previous := s.records
	s.records = append(s.records[:len(s.records):len(s.records)], imported...)
	if err := s.persist(); err != nil {
		s.records = previous
		return 0, fmt.Errorf("failed to persist import: %w", err)
	}

	s.log.Info("imported visit records",
		zap.String("path", path),
		zap.Int("records", len(imported)),
	)
	return len(imported), nil
}
