// Package render formats scan results as a terminal table.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/rickgao/kalshi-scan/internal/scan"
)

const maxTitleLen = 47

// Dollars formats a cent price as a dollar string: 52 -> "$0.52".
func Dollars(cents int) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

// priceCell renders a price column value; unknown prices show "-".
func priceCell(cents int) string {
	if cents <= 0 {
		return "-"
	}
	return Dollars(cents)
}

// spreadCell renders the spread column; wide spreads get a trailing marker.
func spreadCell(r scan.Row) string {
	if r.Spread <= 0 {
		return "-"
	}
	if r.Wide {
		return Dollars(r.Spread) + " !"
	}
	return Dollars(r.Spread)
}

// TimeLeft formats a remaining duration:
// under an hour "37m", under a day "3h 12m", otherwise "1d 6h".
func TimeLeft(d time.Duration) string {
	hours := d.Hours()
	switch {
	case hours < 1:
		return fmt.Sprintf("%dm", int(hours*60))
	case hours < 24:
		h := int(hours)
		m := int((hours - float64(h)) * 60)
		return fmt.Sprintf("%dh %dm", h, m)
	default:
		days := int(hours / 24)
		h := int(hours) % 24
		return fmt.Sprintf("%dd %dh", days, h)
	}
}

// truncate shortens long market titles for the table.
func truncate(title string) string {
	if len(title) > maxTitleLen {
		return title[:maxTitleLen] + "..."
	}
	return title
}

// Table writes the market report to w. An empty row set prints a notice
// instead of a table. thresholdCents is only used for the footer text.
func Table(w io.Writer, rows []scan.Row, windowHours, thresholdCents int) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintf(w, "No markets closing in the next %d hours.\n", windowHours)
		return err
	}

	fmt.Fprintf(w, "Markets Closing Within %d Hours\n\n", windowHours)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MARKET\tYES\tNO\tSPREAD\tCLOSES IN")

	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			truncate(r.Title),
			priceCell(r.YesPrice),
			priceCell(r.NoPrice),
			spreadCell(r),
			TimeLeft(r.TimeLeft),
		)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}

	fmt.Fprintf(w, "\nTotal markets: %d\n", len(rows))

	if wide := scan.CountWide(rows); wide > 0 {
		fmt.Fprintf(w, "Wide spreads (>%s): %d\n", Dollars(thresholdCents), wide)
	}

	return nil
}
