package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/TheraTrack/practice-service/internal/session"
)

// csvHeader is the export's fixed column set. Goals render as one
// comma-joined cell.
var csvHeader = []string{"client", "date", "time", "session_number", "rating", "goals", "progress_notes"}

// WriteCSV streams the filtered sessions as UTF-8 CSV.
func WriteCSV(w io.Writer, sessions []session.FilteredSession) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, s := range sessions {
		record := []string{
			s.ClientName,
			s.Date,
			s.SessionTime,
			strconv.Itoa(s.SessionNumber),
			strconv.Itoa(s.Rating),
			strings.Join(s.Goals, ", "),
			s.ProgressNotes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}

	return nil
}
