package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Key Statistics"

// ExportXLSX writes the report to an Excel workbook for management handoff.
// The workbook has one sheet: summary metrics first, then one two-column
// block per categorical breakdown.
func (r *Report) ExportXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := f.SetColWidth(exportSheet, "A", "A", 28); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(exportSheet, "B", "B", 14); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	row := 1
	writeHeader := func(label, value string) error {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(exportSheet, cell, &[]interface{}{label, value}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		if err := f.SetCellStyle(exportSheet, cell, fmt.Sprintf("B%d", row), headerStyle); err != nil {
			return fmt.Errorf("failed to style row %d: %w", row, err)
		}
		row++
		return nil
	}
	writeRow := func(label string, value interface{}) error {
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(exportSheet, cell, &[]interface{}{label, value}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
		return nil
	}

	if err := writeHeader("Metric", "Value"); err != nil {
		return err
	}
	if err := writeRow("Total visits", r.TotalVisits); err != nil {
		return err
	}
	if err := writeRow("Unique patients", r.UniquePatients); err != nil {
		return err
	}
	if r.AgeKnown > 0 {
		if err := writeRow("Age (min)", r.AgeMin); err != nil {
			return err
		}
		if err := writeRow("Age (max)", r.AgeMax); err != nil {
			return err
		}
		if err := writeRow("Age (mean)", fmt.Sprintf("%.1f", r.AgeMean)); err != nil {
			return err
		}
	}

	for _, section := range r.sections() {
		row++ // blank separator row
		if err := writeHeader(section.Title, "Visits"); err != nil {
			return err
		}
		for _, key := range sortedKeys(section.Counts) {
			if err := writeRow(key, section.Counts[key]); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
