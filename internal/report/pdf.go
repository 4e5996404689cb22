package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/TheraTrack/practice-service/internal/session"
	"github.com/TheraTrack/practice-service/internal/soap"
)

// BuildPDF renders the client report: a session summary block per
// session, newest last, followed by a short SOAP note appendix.
func BuildPDF(clientName string, sessions []session.FilteredSession, notes []soap.Note) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Client Report: %s", clientName), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Client Report: %s", clientName), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Session Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	if len(sessions) == 0 {
		pdf.CellFormat(0, 6, "No sessions recorded.", "", 1, "L", false, 0, "")
	}
	for _, s := range sessions {
		line := fmt.Sprintf("Date: %s | Session: %d | Rating: %d/10", s.Date, s.SessionNumber, s.Rating)
		if s.SessionTime != "" {
			line = fmt.Sprintf("Date: %s (%s) | Session: %d | Rating: %d/10", s.Date, s.SessionTime, s.SessionNumber, s.Rating)
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		if s.ProgressNotes != "" {
			pdf.MultiCell(0, 5, s.ProgressNotes, "", "L", false)
		}
		pdf.Ln(2)
	}

	if len(notes) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "SOAP Notes", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)

		for _, n := range notes {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.CellFormat(0, 6, n.Date.Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
			for _, section := range []struct{ label, text string }{
				{"S", n.Subjective},
				{"O", n.Objective},
				{"A", n.Assessment},
				{"P", n.Plan},
			} {
				if section.text == "" {
					continue
				}
				pdf.MultiCell(0, 5, fmt.Sprintf("%s: %s", section.label, section.text), "", "L", false)
			}
			pdf.Ln(2)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	return buf.Bytes(), nil
}
