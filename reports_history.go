package trackfolio

import (
	"github.com/jrueegg/trackfolio/date"
)

// HistoryPoint is one reconstructed month-end valuation of the portfolio.
type HistoryPoint struct {
	Date                Date
	Value               Money   // total priced value in the reporting currency
	Invested            Money   // net cash deployed up to that date
	MonthlyReturnPct    Percent // naive period return, 0 when the previous value is 0
	CumulativeReturnPct Percent // ratio to the first period with nonzero value
}

// PerformanceReport is the reconstructed performance history of the
// portfolio: a chronological series of month-end valuations plus parallel
// allocation series per asset type and per currency.
//
// The monthly return is a naive period return, (v_t - v_{t-1}) / v_{t-1}:
// it does not adjust for cash flows inside the period and is therefore not a
// time-weighted return. The cumulative return is the direct ratio to the
// first period with nonzero value. Both definitions are documented in the
// "returns" doc topic.
type PerformanceReport struct {
	Currency string
	Points   []HistoryPoint // strictly increasing dates, no duplicates

	// Allocation histories, summing the CurrentPct of priced positions per
	// group at every period end. Groups with zero exposure at a date are
	// simply absent from the series at that date.
	ByAssetType map[AssetType]*date.History[float64]
	ByCurrency  map[string]*date.History[float64]
}

// NewPerformanceReport rebuilds the portfolio history at month-end dates
// spanning from the earliest transaction through 'to', keeping at most
// 'maxPoints' most recent periods (0 keeps everything).
//
// Each period end gets a fully independent snapshot: holdings replay and
// valuation both bounded by that date. O(periods x transactions) by design;
// an incremental replay is the known optimization if this ever outgrows a
// household portfolio.
func NewPerformanceReport(ledger *Ledger, market *Market, reportingCurrency string, to Date, maxPoints int) *PerformanceReport {
	report := &PerformanceReport{
		Currency:    reportingCurrency,
		ByAssetType: make(map[AssetType]*date.History[float64]),
		ByCurrency:  make(map[string]*date.History[float64]),
	}

	earliest := ledger.Earliest()
	if earliest.IsZero() {
		return report
	}
	var ends []Date
	for on := range date.MonthEnds(earliest, to) {
		ends = append(ends, on)
	}
	if maxPoints > 0 && len(ends) > maxPoints {
		ends = ends[len(ends)-maxPoints:]
	}

	var prev float64
	var base float64 // value of the first period with nonzero value
	for _, on := range ends {
		state := NewSnapshot(ledger, market, reportingCurrency, on).State()
		value := state.TotalValue.AsFloat()

		point := HistoryPoint{
			Date:     on,
			Value:    state.TotalValue,
			Invested: state.Invested,
		}
		if prev != 0 {
			point.MonthlyReturnPct = Percent(100 * (value - prev) / prev)
		}
		if base == 0 && value != 0 {
			base = value
		}
		if base != 0 {
			point.CumulativeReturnPct = Percent(100 * (value - base) / base)
		}
		report.Points = append(report.Points, point)
		prev = value

		for _, pos := range state.Positions {
			if !pos.Priced {
				continue
			}
			appendPct(report.ByAssetType, pos.Security.AssetType(), on, float64(pos.CurrentPct))
			appendPct(report.ByCurrency, pos.Security.Currency(), on, float64(pos.CurrentPct))
		}
	}
	return report
}

// appendPct accumulates an allocation percentage into the group's series.
func appendPct[K comparable](groups map[K]*date.History[float64], key K, on Date, pct float64) {
	h, ok := groups[key]
	if !ok {
		h = &date.History[float64]{}
		groups[key] = h
	}
	if prev, found := h.Get(on); found {
		pct += prev
	}
	h.Append(on, pct)
}

// Values returns the plain value series of the report, for the analytics
// calculator.
func (r *PerformanceReport) Values() []float64 {
	values := make([]float64, 0, len(r.Points))
	for _, p := range r.Points {
		values = append(values, p.Value.AsFloat())
	}
	return values
}

// Dates returns the date of every point of the report, parallel to Values.
func (r *PerformanceReport) Dates() []Date {
	dates := make([]Date, 0, len(r.Points))
	for _, p := range r.Points {
		dates = append(dates, p.Date)
	}
	return dates
}
