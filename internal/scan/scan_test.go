package scan

import (
	"testing"
	"time"

	"github.com/rickgao/kalshi-scan/internal/api"
)

var scanNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

func closeTimeIn(d time.Duration) string {
	return scanNow.Add(d).Format(time.RFC3339)
}

func TestWindow(t *testing.T) {
	minTS, maxTS := Window(scanNow, 24)

	if minTS != scanNow.Unix() {
		t.Errorf("minTS = %d, want %d", minTS, scanNow.Unix())
	}
	if want := scanNow.Unix() + 24*3600; maxTS != want {
		t.Errorf("maxTS = %d, want %d", maxTS, want)
	}
}

func TestSpread(t *testing.T) {
	tests := []struct {
		name string
		bid  int
		ask  int
		want int
	}{
		{"normal spread", 45, 52, 7},
		{"tight spread", 50, 51, 1},
		{"zero spread", 50, 50, 0},
		{"missing bid", 0, 52, 0},
		{"missing ask", 45, 0, 0},
		{"both missing", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Spread(tt.bid, tt.ask); got != tt.want {
				t.Errorf("Spread(%d, %d) = %d, want %d", tt.bid, tt.ask, got, tt.want)
			}
		})
	}
}

func TestSpread_NonNegative(t *testing.T) {
	// Well-formed quotes always have ask >= bid; the spread must not go negative.
	for bid := 1; bid <= 99; bid += 7 {
		for ask := bid; ask <= 99; ask += 7 {
			if got := Spread(bid, ask); got < 0 {
				t.Fatalf("Spread(%d, %d) = %d, want non-negative", bid, ask, got)
			}
		}
	}
}

func TestNoPrice(t *testing.T) {
	tests := []struct {
		name   string
		market api.APIMarket
		want   int
	}{
		{"no bid present", api.APIMarket{NoBid: 48, YesBid: 50}, 48},
		{"complement of yes bid", api.APIMarket{YesBid: 52}, 48},
		{"complement of last price", api.APIMarket{LastPrice: 30}, 70},
		{"nothing known", api.APIMarket{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NoPrice(tt.market); got != tt.want {
				t.Errorf("NoPrice() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestYesPrice(t *testing.T) {
	if got := YesPrice(api.APIMarket{YesBid: 52, LastPrice: 40}); got != 52 {
		t.Errorf("YesPrice with bid = %d, want 52", got)
	}
	if got := YesPrice(api.APIMarket{LastPrice: 40}); got != 40 {
		t.Errorf("YesPrice falls back to last price = %d, want 40", got)
	}
}

func TestBuildRows_ComplementInvariant(t *testing.T) {
	// NO price equals 100 minus YES price whenever the NO side is unquoted.
	for yes := 1; yes <= 99; yes++ {
		m := api.APIMarket{
			Ticker:    "T",
			YesBid:    yes,
			CloseTime: closeTimeIn(2 * time.Hour),
		}
		rows := BuildRows([]api.APIMarket{m}, scanNow, 10)
		if len(rows) != 1 {
			t.Fatalf("len(rows) = %d, want 1", len(rows))
		}
		if rows[0].NoPrice != 100-yes {
			t.Fatalf("NoPrice for yes=%d is %d, want %d", yes, rows[0].NoPrice, 100-yes)
		}
	}
}

func TestBuildRows_WideFlag(t *testing.T) {
	const threshold = 10

	tests := []struct {
		name string
		bid  int
		ask  int
		wide bool
	}{
		{"well above threshold", 40, 60, true},
		{"one over threshold", 40, 51, true},
		{"exactly at threshold not flagged", 40, 50, false},
		{"below threshold", 48, 52, false},
		{"no quote", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := api.APIMarket{
				Ticker:    "T",
				YesBid:    tt.bid,
				YesAsk:    tt.ask,
				CloseTime: closeTimeIn(time.Hour),
			}
			rows := BuildRows([]api.APIMarket{m}, scanNow, threshold)
			if len(rows) != 1 {
				t.Fatalf("len(rows) = %d, want 1", len(rows))
			}
			if rows[0].Wide != tt.wide {
				t.Errorf("Wide for spread %d = %v, want %v", rows[0].Spread, rows[0].Wide, tt.wide)
			}
		})
	}
}

func TestBuildRows_WindowBoundary(t *testing.T) {
	markets := []api.APIMarket{
		{Ticker: "SOON", CloseTime: closeTimeIn(23 * time.Hour)},
		{Ticker: "LATER", CloseTime: closeTimeIn(25 * time.Hour)},
	}

	// The server-side filter is the real 24h gate; verify our window math
	// would include SOON and exclude LATER.
	minTS, maxTS := Window(scanNow, 24)

	soonTS := api.ParseCloseTime(markets[0].CloseTime).Unix()
	laterTS := api.ParseCloseTime(markets[1].CloseTime).Unix()

	if soonTS < minTS || soonTS > maxTS {
		t.Errorf("market closing in 23h should fall inside the window")
	}
	if laterTS <= maxTS {
		t.Errorf("market closing in 25h should fall outside the window")
	}
}

func TestBuildRows_DropsClosedAndInvalid(t *testing.T) {
	markets := []api.APIMarket{
		{Ticker: "OPEN", CloseTime: closeTimeIn(time.Hour)},
		{Ticker: "CLOSED", CloseTime: closeTimeIn(-time.Hour)},
		{Ticker: "EXACT", CloseTime: closeTimeIn(0)},
		{Ticker: "BROKEN", CloseTime: "garbage"},
		{Ticker: "EMPTY", CloseTime: ""},
	}

	rows := BuildRows(markets, scanNow, 10)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	if rows[0].Ticker != "OPEN" {
		t.Errorf("Ticker = %q, want %q", rows[0].Ticker, "OPEN")
	}
}

func TestBuildRows_SortedByTimeLeft(t *testing.T) {
	markets := []api.APIMarket{
		{Ticker: "C", CloseTime: closeTimeIn(12 * time.Hour)},
		{Ticker: "A", CloseTime: closeTimeIn(time.Hour)},
		{Ticker: "B", CloseTime: closeTimeIn(6 * time.Hour)},
	}

	rows := BuildRows(markets, scanNow, 10)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	want := []string{"A", "B", "C"}
	for i, ticker := range want {
		if rows[i].Ticker != ticker {
			t.Errorf("rows[%d].Ticker = %q, want %q", i, rows[i].Ticker, ticker)
		}
	}
}

func TestCountWide(t *testing.T) {
	rows := []Row{
		{Wide: true},
		{Wide: false},
		{Wide: true},
	}
	if got := CountWide(rows); got != 2 {
		t.Errorf("CountWide = %d, want 2", got)
	}
	if got := CountWide(nil); got != 0 {
		t.Errorf("CountWide(nil) = %d, want 0", got)
	}
}
