// Package report renders eligibility results for a terminal.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/vietddude/airdrop-checker/internal/core/domain"
)

const (
	colorReset  = "\x1b[0m"
	colorBright = "\x1b[1m"
	colorDim    = "\x1b[2m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
)

const separatorWidth = 50

// Console writes human-readable output.
type Console struct {
	w     io.Writer
	color bool
}

// NewConsole creates a Console. ANSI colors are emitted only when color is set.
func NewConsole(w io.Writer, color bool) *Console {
	return &Console{w: w, color: color}
}

func (c *Console) paint(s string, codes ...string) string {
	if !c.color || len(codes) == 0 {
		return s
	}
	return strings.Join(codes, "") + s + colorReset
}

// Banner prints the title block.
func (c *Console) Banner() {
	_, _ = fmt.Fprintln(c.w, c.paint(logo, colorCyan, colorBright))
	_, _ = fmt.Fprintln(c.w, c.paint("                     AIRDROP ELIGIBILITY CHECKER", colorYellow, colorBright))
	_, _ = fmt.Fprintln(c.w, c.paint("                    Check your wallet eligibility", colorDim))
	_, _ = fmt.Fprintln(c.w, c.paint(strings.Repeat("=", 70), colorDim))
	_, _ = fmt.Fprintln(c.w)
}

// CheckBanner announces how many addresses are about to be checked.
func (c *Console) CheckBanner(count int) {
	_, _ = fmt.Fprintf(c.w, "%s\n\n", c.paint(fmt.Sprintf("Checking %d address(es)...", count), colorBright))
}

// Results prints results grouped by status.
func (c *Console) Results(results []domain.EligibilityResult) {
	if len(results) == 0 {
		_, _ = fmt.Fprintln(c.w, "No results to display")
		return
	}

	_, _ = fmt.Fprintln(c.w, c.paint("RESULTS", colorBright))

	groups := []struct {
		title  string
		color  string
		status domain.EligibilityStatus
	}{
		{"ELIGIBLE ADDRESSES", colorGreen, domain.StatusEligible},
		{"NOT ELIGIBLE ADDRESSES", colorRed, domain.StatusNotEligible},
		{"ERRORS", colorYellow, domain.StatusError},
	}

	for _, g := range groups {
		n := 0
		for _, r := range results {
			if r.Status != g.status {
				continue
			}
			if n == 0 {
				_, _ = fmt.Fprintln(c.w)
				_, _ = fmt.Fprintln(c.w, c.paint(g.title+":", g.color, colorBright))
				_, _ = fmt.Fprintln(c.w, strings.Repeat("-", separatorWidth))
			}
			n++
			_, _ = fmt.Fprintf(c.w, "%2d. %s\n", n, r.Address)
			if r.Message != "" {
				_, _ = fmt.Fprintf(c.w, "    %s\n", r.Message)
			}
		}
	}
	_, _ = fmt.Fprintln(c.w)
}

// Statistics prints the summary block with a progress bar.
func (c *Console) Statistics(s domain.Statistics) {
	_, _ = fmt.Fprintln(c.w, c.paint("STATISTICS", colorBright))

	tw := tabwriter.NewWriter(c.w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Total addresses checked:\t%d\n", s.Total)
	_, _ = fmt.Fprintf(tw, "Eligible addresses:\t%d\n", s.Eligible)
	_, _ = fmt.Fprintf(tw, "Not eligible addresses:\t%d\n", s.NotEligible)
	_, _ = fmt.Fprintf(tw, "Errors:\t%d\n", s.Errors)
	_, _ = fmt.Fprintf(tw, "Success rate:\t%.2f%%\n", s.EligiblePercentage)
	_ = tw.Flush()

	_, _ = fmt.Fprintf(c.w, "Progress: %s\n\n", ProgressBar(s.Eligible, s.Total, 30))
	_, _ = fmt.Fprintln(c.w, "Tip: Eligible addresses can claim 0G tokens in the airdrop!")
}

// ProgressBar renders current/total as a fixed-width bar followed by the
// percentage.
func ProgressBar(current, total, width int) string {
	if width <= 0 {
		width = 30
	}
	pct := 0.0
	if total > 0 {
		pct = float64(current) / float64(total)
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "] " + fmt.Sprintf("%.1f%%", pct*100)
}

const logo = `
          ██████╗  ██████╗     ██╗      █████╗ ██████╗ ███████╗
         ██    ██╗██╔════╝     ██║     ██╔══██╗██╔══██╗██╔════╝
         ██    ██║██║  ███╗    ██║     ███████║██████╔╝███████╗
         ██    ██║██║   ██║    ██║     ██╔══██║██╔══██╗╚════██║
          ██████╔╝╚██████╔╝    ███████╗██║  ██║██████╔╝███████║
          ╚═════╝  ╚═════╝     ╚══════╝╚═╝  ╚═╝╚═════╝ ╚══════╝`
