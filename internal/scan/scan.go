// Package scan turns raw market records into spread-annotated report rows.
package scan

import (
	"sort"
	"time"

	"github.com/rickgao/kalshi-scan/internal/api"
)

// Row is one market in the report. Rows are built once and never mutated.
type Row struct {
	Ticker    string
	Title     string
	YesPrice  int  // cents; best YES bid, falling back to last trade price
	NoPrice   int  // cents; best NO bid, falling back to 100 - yes
	Spread    int  // cents; YES ask minus YES bid, 0 when either side is missing
	Wide      bool // spread strictly above the configured threshold
	CloseTime time.Time
	TimeLeft  time.Duration // remaining until close, relative to the scan time
}

// Window returns the close-timestamp bounds (unix seconds) for markets
// closing within the next `hours` hours.
func Window(now time.Time, hours int) (minTS, maxTS int64) {
	minTS = now.Unix()
	maxTS = now.Add(time.Duration(hours) * time.Hour).Unix()
	return minTS, maxTS
}

// Spread returns the YES bid/ask spread in cents.
// Markets quoted on only one side have no meaningful spread and report 0.
func Spread(yesBid, yesAsk int) int {
	if yesBid > 0 && yesAsk > 0 {
		return yesAsk - yesBid
	}
	return 0
}

// YesPrice picks the displayed YES price: best bid, else last trade.
func YesPrice(m api.APIMarket) int {
	if m.YesBid > 0 {
		return m.YesBid
	}
	return m.LastPrice
}

// NoPrice picks the displayed NO price: best NO bid, else the complement
// of the YES price. Unknown on both sides reports 0.
func NoPrice(m api.APIMarket) int {
	if m.NoBid > 0 {
		return m.NoBid
	}
	if yes := YesPrice(m); yes > 0 {
		return 100 - yes
	}
	return 0
}

// BuildRows converts markets into report rows relative to `now`.
// Markets already closed or with unparseable close times are dropped.
// Rows are sorted by time remaining, soonest first.
func BuildRows(markets []api.APIMarket, now time.Time, thresholdCents int) []Row {
	rows := make([]Row, 0, len(markets))

	for _, m := range markets {
		closeTime := api.ParseCloseTime(m.CloseTime)
		if closeTime.IsZero() || !closeTime.After(now) {
			continue
		}

		spread := Spread(m.YesBid, m.YesAsk)

		rows = append(rows, Row{
			Ticker:    m.Ticker,
			Title:     m.Title,
			YesPrice:  YesPrice(m),
			NoPrice:   NoPrice(m),
			Spread:    spread,
			Wide:      spread > thresholdCents,
			CloseTime: closeTime,
			TimeLeft:  closeTime.Sub(now),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].TimeLeft < rows[j].TimeLeft
	})

	return rows
}

// CountWide returns how many rows carry the wide-spread flag.
func CountWide(rows []Row) int {
	n := 0
	for _, r := range rows {
		if r.Wide {
			n++
		}
	}
	return n
}
