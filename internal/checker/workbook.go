package checker

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vietddude/airdrop-checker/internal/core/domain"
)

// Sheet names of the exported workbook.
const (
	ResultsSheet    = "0G Airdrop Results"
	StatisticsSheet = "Statistics"
)

const headerFill = "E6F3FF"

var statusFills = map[domain.EligibilityStatus]string{
	domain.StatusEligible:    "D4EDDA",
	domain.StatusNotEligible: "F8D7DA",
	domain.StatusError:       "FFEAA7",
}

// ExportWorkbook renders results as an xlsx workbook with a results sheet
// and a statistics sheet.
func ExportWorkbook(results []domain.EligibilityResult) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ResultsSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeResultsSheet(f, results); err != nil {
		return nil, fmt.Errorf("results sheet: %w", err)
	}
	if err := writeStatisticsSheet(f, Statistics(results)); err != nil {
		return nil, fmt.Errorf("statistics sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeResultsSheet(f *excelize.File, results []domain.EligibilityResult) error {
	widths := map[string]float64{"A": 45, "B": 15, "C": 50, "D": 25}
	for col, w := range widths {
		if err := f.SetColWidth(ResultsSheet, col, col, w); err != nil {
			return err
		}
	}

	if err := writeHeader(f, ResultsSheet, exportHeaders); err != nil {
		return err
	}

	fills := make(map[domain.EligibilityStatus]int, len(statusFills))
	for status, color := range statusFills {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return err
		}
		fills[status] = id
	}

	for i, r := range results {
		row := i + 2
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		values := []any{r.Address, string(r.Status), r.Message, formatTimestamp(r.Timestamp)}
		if err := f.SetSheetRow(ResultsSheet, cell, &values); err != nil {
			return err
		}

		if id, ok := fills[r.Status]; ok {
			statusCell := fmt.Sprintf("B%d", row)
			if err := f.SetCellStyle(ResultsSheet, statusCell, statusCell, id); err != nil {
				return err
			}
		}
	}

	if err := f.AutoFilter(ResultsSheet, "A1:D1", nil); err != nil {
		return err
	}

	return f.SetPanes(ResultsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeStatisticsSheet(f *excelize.File, stats domain.Statistics) error {
	if _, err := f.NewSheet(StatisticsSheet); err != nil {
		return err
	}
	if err := f.SetColWidth(StatisticsSheet, "A", "A", 25); err != nil {
		return err
	}
	if err := f.SetColWidth(StatisticsSheet, "B", "B", 15); err != nil {
		return err
	}

	if err := writeHeader(f, StatisticsSheet, []string{"Metric", "Value"}); err != nil {
		return err
	}

	rows := [][]any{
		{"Total Addresses", stats.Total},
		{"Eligible Addresses", stats.Eligible},
		{"Not Eligible Addresses", stats.NotEligible},
		{"Errors", stats.Errors},
		{"Success Rate (%)", fmt.Sprintf("%.2f", stats.EligiblePercentage)},
	}
	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(StatisticsSheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	values := make([]any, len(headers))
	for i, h := range headers {
		values[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &values); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
	})
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}
