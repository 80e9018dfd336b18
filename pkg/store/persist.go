package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/carevault/hdms-in-go/pkg/model"
)

// readRecords parses a records file: a header row naming the canonical
// columns, then one row per visit. Parsing is strict; a short or long row
// anywhere fails the load.
func readRecords(path string) ([]model.VisitRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(model.Columns)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %s is empty", ErrBadHeader, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}
	for i, col := range model.Columns {
		if header[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i+1, header[i], col)
		}
	}

	var records []model.VisitRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("malformed record at line %d of %s: %w", line, path, err)
		}
		rec, err := model.VisitFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("malformed record at line %d of %s: %w", line, path, err)
		}
		if _, err := model.ParseVisitTime(rec.VisitTime); err != nil {
			return nil, fmt.Errorf("bad visit time at line %d of %s: %w", line, path, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// persist writes the whole table to a temp file in the source directory and
// renames it into place, so the backing file is never left half-written.
func (s *Store) persist() error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".records-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := writeRecords(tmp, s.records); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to flush records: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace records source: %w", err)
	}
	return nil
}

func writeRecords(w io.Writer, records []model.VisitRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(model.Columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(rec.Row()); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	return nil
}
