package checker

import (
	"strings"
	"time"

	"github.com/vietddude/airdrop-checker/internal/core/domain"
)

// TimestampLayout is the ISO-8601 UTC layout used in exports.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

var exportHeaders = []string{"Address", "Status", "Message", "Timestamp"}

// ExportCSV renders results as comma-separated lines with a header row.
// Fields are not quoted; a comma inside a message shifts the columns.
func ExportCSV(results []domain.EligibilityResult) string {
	lines := make([]string, 0, len(results)+1)
	lines = append(lines, strings.Join(exportHeaders, ","))
	for _, r := range results {
		lines = append(lines, strings.Join([]string{
			r.Address,
			string(r.Status),
			r.Message,
			formatTimestamp(r.Timestamp),
		}, ","))
	}
	return strings.Join(lines, "\n")
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
