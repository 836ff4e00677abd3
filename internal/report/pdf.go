// Package report renders the assembled feedback report as a PDF document.
// It consumes feedback.ReportData only and never reaches into storage or
// the aggregation engine.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/campuskit/feedback-server/internal/feedback"
)

// The built-in PDF core fonts are latin-1 only and cannot encode the star
// glyphs, so the report renders them with ASCII stand-ins.
var pdfStars = strings.NewReplacer(feedback.FilledStar, "*", feedback.EmptyStar, "-")

// Render produces the report PDF. An empty ReportData still renders: it
// carries the placeholder text instead of the table and star section.
func Render(data feedback.ReportData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 18, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Faculty Feedback Report", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	if data.Empty {
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 8, data.Placeholder, "", "L", false)
		return output(pdf)
	}

	pdf.SetFont("Helvetica", "", 11)
	meta := []string{
		fmt.Sprintf("Faculty Member: %s", data.Subject),
		fmt.Sprintf("Total Responses: %d", data.ResponseCount),
		fmt.Sprintf("Overall Rating: %s / 5.00", data.OverallAverage),
	}
	for _, line := range meta {
		pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Overall Star Rating", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(255, 191, 0)
	pdf.CellFormat(0, 12, pdfStars.Replace(data.Stars), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Category-wise Averages", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(0, 86, 179)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(110, 8, "Category", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Average (1-5)", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range data.Rows {
		pdf.CellFormat(110, 8, row.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, row.Average, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Student Comments", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	if len(data.Comments) == 0 {
		pdf.CellFormat(0, 7, "No specific comments were provided.", "", 1, "L", false, 0, "")
	} else {
		for _, comment := range data.Comments {
			pdf.MultiCell(0, 7, "- "+comment, "", "L", false)
			pdf.Ln(1)
		}
	}

	return output(pdf)
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render report pdf: %w", err)
	}
	return buf.Bytes(), nil
}
