package renderer

import (
	"strings"
	"testing"

	"github.com/jrueegg/trackfolio"
	"github.com/jrueegg/trackfolio/date"
	"github.com/jrueegg/trackfolio/macro"
)

func testState(t *testing.T) *trackfolio.PortfolioState {
	t.Helper()
	market := trackfolio.NewMarket()
	for _, sec := range []*trackfolio.Security{
		trackfolio.NewSecurity("vt", "VT", "Vanguard Total World", trackfolio.AssetEquity, "USD", 60),
		trackfolio.NewSecurity("gld", "GLD", "Gold ETF", trackfolio.AssetMetal, "USD", 10),
	} {
		if err := market.Add(sec); err != nil {
			t.Fatal(err)
		}
	}
	market.Get("VT").Append(date.MustParse("2025-01-10"), 100)
	// GLD stays unpriced

	ledger := trackfolio.NewLedger(
		trackfolio.NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"),
		trackfolio.NewBuy(date.MustParse("2025-01-10"), "", "GLD", 1, 180, "USD"),
	)
	return trackfolio.NewSnapshot(ledger, market, "USD", date.MustParse("2025-01-31")).State()
}

func TestHolding(t *testing.T) {
	got := Holding(testState(t))

	for _, want := range []string{
		"# Portfolio on 2025-01-31",
		"VT",
		"GLD",
		"no price", // unpriced positions stay visible
		"Total value:",
		"Balance:",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestHistoryAndAnalytics(t *testing.T) {
	market := trackfolio.NewMarket()
	sec := trackfolio.NewSecurity("vt", "VT", "", trackfolio.AssetEquity, "USD", 100)
	if err := market.Add(sec); err != nil {
		t.Fatal(err)
	}
	sec.Append(date.MustParse("2025-01-31"), 100)
	sec.Append(date.MustParse("2025-02-28"), 110)

	ledger := trackfolio.NewLedger(trackfolio.NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"))
	report := trackfolio.NewPerformanceReport(ledger, market, "USD", date.MustParse("2025-02-28"), 0)

	history := History(report)
	for _, want := range []string{"# Performance", "2025-01-31", "2025-02-28", "equity"} {
		if !strings.Contains(history, want) {
			t.Errorf("history output missing %q:\n%s", want, history)
		}
	}

	analytics := Analytics(trackfolio.NewAnalyticsReport(report))
	for _, want := range []string{"Annualized return", "Max drawdown", "2025"} {
		if !strings.Contains(analytics, want) {
			t.Errorf("analytics output missing %q:\n%s", want, analytics)
		}
	}
}

func TestMacro(t *testing.T) {
	report := macro.ComputeIndex([]macro.Indicator{
		{ID: "vix", Name: "VIX", Value: 40, Min: 10, Max: 40, Weight: 100, Direction: macro.HighIsCrisis},
	})
	got := Macro(report)

	for _, want := range []string{
		"# Market sentiment",
		"**0 / 100**", // fully normalized crisis scores the gauge at zero
		"crisis",
		"VIX",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
