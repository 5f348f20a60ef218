package trackfolio

import (
	"math"
	"testing"

	"github.com/jrueegg/trackfolio/date"
)

// newTestMarket declares a small USD/CHF market: two USD securities and the
// USDCHF pair, priced on the given dates.
func newTestMarket(t *testing.T) *Market {
	t.Helper()
	market := NewMarket()
	securities := []*Security{
		NewSecurity("vt", "VT", "Vanguard Total World", AssetEquity, "USD", 60),
		NewSecurity("gld", "GLD", "Gold ETF", AssetMetal, "USD", 10),
		NewSecurity("usdchf", "USDCHF", "", AssetCash, "CHF", 0),
	}
	for _, sec := range securities {
		if err := market.Add(sec); err != nil {
			t.Fatal(err)
		}
	}
	return market
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSnapshotState(t *testing.T) {
	market := newTestMarket(t)
	market.Get("VT").Append(date.MustParse("2025-01-10"), 100)
	market.Get("VT").Append(date.MustParse("2025-01-30"), 110)

	ledger := NewLedger(NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"))

	state := NewSnapshot(ledger, market, "USD", date.MustParse("2025-01-30")).State()

	if got := state.TotalValue; !got.Equal(M(1100, "USD")) {
		t.Errorf("TotalValue = %s, want 1100 USD", got)
	}
	if got := state.Invested; !got.Equal(M(1000, "USD")) {
		t.Errorf("Invested = %s, want 1000 USD", got)
	}
	if got := state.Balance; !got.Equal(M(100, "USD")) {
		t.Errorf("Balance = %s, want 100 USD", got)
	}
	if got := float64(state.BalancePct); !almostEqual(got, 10) {
		t.Errorf("BalancePct = %v, want 10", got)
	}
	if len(state.Positions) != 1 {
		t.Fatalf("got %d positions, want 1", len(state.Positions))
	}
	pos := state.Positions[0]
	if !pos.Priced || !pos.Quantity.Equal(Q(10)) {
		t.Errorf("position = %+v", pos)
	}
	if got := float64(pos.CurrentPct); !almostEqual(got, 100) {
		t.Errorf("CurrentPct = %v, want 100", got)
	}
	if got := float64(pos.TargetPct); got != 60 {
		t.Errorf("TargetPct = %v, want 60", got)
	}
}

func TestSnapshotNoLookAhead(t *testing.T) {
	market := newTestMarket(t)
	market.Get("VT").Append(date.MustParse("2025-01-10"), 100)
	market.Get("VT").Append(date.MustParse("2025-01-30"), 110)

	ledger := NewLedger(NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"))

	// on the 20th only the price of the 10th is known
	s := NewSnapshot(ledger, market, "USD", date.MustParse("2025-01-20"))
	value, priced := s.MarketValue("VT")
	if !priced || !value.Equal(M(1000, "USD")) {
		t.Errorf("MarketValue() = %s, %v; want 1000 USD, true", value, priced)
	}
}

func TestSnapshotUnpricedPosition(t *testing.T) {
	market := newTestMarket(t)
	// GLD never gets a quote
	market.Get("VT").Append(date.MustParse("2025-01-10"), 100)

	ledger := NewLedger(
		NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"),
		NewBuy(date.MustParse("2025-01-10"), "", "GLD", 2, 180, "USD"),
	)

	state := NewSnapshot(ledger, market, "USD", date.MustParse("2025-01-15")).State()
	if len(state.Positions) != 2 {
		t.Fatalf("got %d positions, want 2 (unpriced ones stay listed)", len(state.Positions))
	}
	// positions come in declaration order: VT then GLD
	if state.Positions[1].Priced {
		t.Error("GLD should be unpriced")
	}
	if got := float64(state.Positions[1].CurrentPct); got != 0 {
		t.Errorf("unpriced CurrentPct = %v, want 0", got)
	}
	// total counts only the priced position
	if got := state.TotalValue; !got.Equal(M(1000, "USD")) {
		t.Errorf("TotalValue = %s, want 1000 USD", got)
	}
	// the priced position owns 100% of the priced total
	if got := float64(state.Positions[0].CurrentPct); !almostEqual(got, 100) {
		t.Errorf("priced CurrentPct = %v, want 100", got)
	}
	// invested still counts both flows, they happened in the reporting currency
	if got := state.Invested; !got.Equal(M(1360, "USD")) {
		t.Errorf("Invested = %s, want 1360 USD", got)
	}
}

func TestSnapshotCurrencyConversion(t *testing.T) {
	market := newTestMarket(t)
	market.Get("VT").Append(date.MustParse("2025-01-10"), 100)
	market.Get("USDCHF").Append(date.MustParse("2025-01-10"), 0.90)
	market.Get("USDCHF").Append(date.MustParse("2025-02-01"), 0.80)

	ledger := NewLedger(NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"))

	state := NewSnapshot(ledger, market, "CHF", date.MustParse("2025-02-01")).State()

	// value at the current rate: 10 x 100 x 0.80
	if got := state.TotalValue; !got.Equal(M(800, "CHF")) {
		t.Errorf("TotalValue = %s, want 800 CHF", got)
	}
	// invested at the transaction-date rate: 1000 x 0.90
	if got := state.Invested; !got.Equal(M(900, "CHF")) {
		t.Errorf("Invested = %s, want 900 CHF", got)
	}
	if got := state.Balance; !got.Equal(M(-100, "CHF")) {
		t.Errorf("Balance = %s, want -100 CHF", got)
	}
}

func TestSnapshotMissingRate(t *testing.T) {
	market := newTestMarket(t)
	market.Get("VT").Append(date.MustParse("2025-01-10"), 100)
	// no USDCHF rate at all

	ledger := NewLedger(NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"))

	state := NewSnapshot(ledger, market, "CHF", date.MustParse("2025-02-01")).State()
	if len(state.Positions) != 1 || state.Positions[0].Priced {
		t.Error("a position without an exchange rate must be unpriced")
	}
	if !state.TotalValue.IsZero() || !state.Invested.IsZero() {
		t.Errorf("TotalValue = %s, Invested = %s; want both zero", state.TotalValue, state.Invested)
	}
	// nothing priced, nothing invested: every percentage collapses to zero
	if state.BalancePct != 0 {
		t.Errorf("BalancePct = %v, want 0", state.BalancePct)
	}
}

func TestSnapshotClosedPositionExcluded(t *testing.T) {
	market := newTestMarket(t)
	market.Get("VT").Append(date.MustParse("2025-01-10"), 100)

	ledger := NewLedger(
		NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"),
		NewSell(date.MustParse("2025-01-20"), "", "VT", 10, 120, "USD"),
	)

	state := NewSnapshot(ledger, market, "USD", date.MustParse("2025-01-31")).State()
	if len(state.Positions) != 0 {
		t.Fatalf("got %d positions, want 0 after closing", len(state.Positions))
	}
	// realized gain shows up as negative invested: 1000 - 1200
	if got := state.Invested; !got.Equal(M(-200, "USD")) {
		t.Errorf("Invested = %s, want -200 USD", got)
	}
	if got := state.Balance; !got.Equal(M(200, "USD")) {
		t.Errorf("Balance = %s, want 200 USD", got)
	}
}

func TestMarketRateAsOf(t *testing.T) {
	market := newTestMarket(t)
	market.Get("USDCHF").Append(date.MustParse("2025-01-10"), 0.90)

	if rate, ok := market.RateAsOf("USD", "USD", date.MustParse("2025-01-15")); !ok || rate != 1 {
		t.Errorf("same-currency rate = %v, %v; want 1, true", rate, ok)
	}
	if rate, ok := market.RateAsOf("USD", "CHF", date.MustParse("2025-01-15")); !ok || rate != 0.90 {
		t.Errorf("USD->CHF rate = %v, %v; want 0.90, true", rate, ok)
	}
	if _, ok := market.RateAsOf("EUR", "CHF", date.MustParse("2025-01-15")); ok {
		t.Error("undeclared pair should have no rate")
	}
}
