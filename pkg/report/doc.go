// Package report computes aggregate key statistics over the visit table
// and renders them as text or an Excel workbook.
package report
