package trackfolio

import (
	"math"
)

// Drawdown is the depth of the decline from the running peak at one date.
type Drawdown struct {
	Date  Date
	Depth Percent // <= 0 by construction
}

// AnnualReturn is the return of one calendar year, computed from the first
// and last available points inside the year (not interpolated).
type AnnualReturn struct {
	Year      int
	ReturnPct Percent
}

// AnalyticsReport holds the risk statistics derived from the reconstructed
// value series.
//
// Every degeneracy resolves to 0 rather than an error or a NaN: a series too
// short to annualize, a zero starting value, a flat series. The Sharpe ratio
// assumes a zero risk-free rate since no risk-free input exists here.
type AnalyticsReport struct {
	AnnualizedReturn Percent // CAGR over the whole series
	StdDev           Percent // sample stddev of monthly returns, annualized
	Sharpe           float64 // AnnualizedReturn / StdDev, 0 when StdDev is 0
	MaxDrawdown      Percent // most negative drawdown depth, 0 when none
	Drawdowns        []Drawdown
	AnnualReturns    []AnnualReturn // ascending years
}

// NewAnalyticsReport computes the risk statistics of a performance history.
func NewAnalyticsReport(r *PerformanceReport) *AnalyticsReport {
	dates, values := r.Dates(), r.Values()
	report := &AnalyticsReport{
		AnnualizedReturn: annualizedReturn(values),
		StdDev:           annualizedStdDev(values),
		AnnualReturns:    annualReturns(dates, values),
	}
	if report.StdDev != 0 {
		report.Sharpe = float64(report.AnnualizedReturn) / float64(report.StdDev)
	}
	report.Drawdowns, report.MaxDrawdown = drawdowns(dates, values)
	return report
}

// annualizedReturn is the CAGR of the series: (v_final/v_initial)^(1/years)-1
// with years counted as monthly intervals over 12.
func annualizedReturn(values []float64) Percent {
	months := len(values) - 1
	if months <= 0 {
		return 0
	}
	initial, final := values[0], values[len(values)-1]
	if initial <= 0 {
		return 0
	}
	years := float64(months) / 12
	return Percent(100 * (math.Pow(final/initial, 1/years) - 1))
}

// monthlyReturns lists the period-over-period returns of the series as
// fractions. Periods starting from a zero value are undefined and skipped.
func monthlyReturns(values []float64) []float64 {
	var returns []float64
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		returns = append(returns, values[i]/values[i-1]-1)
	}
	return returns
}

// annualizedStdDev is the sample standard deviation of the monthly returns,
// annualized by sqrt(12). Fewer than two returns have no dispersion: 0.
func annualizedStdDev(values []float64) Percent {
	returns := monthlyReturns(values)
	n := len(returns)
	if n < 2 {
		return 0
	}
	var mean float64
	for _, r := range returns {
		mean += r
	}
	mean /= float64(n)
	var sum float64
	for _, r := range returns {
		sum += (r - mean) * (r - mean)
	}
	variance := sum / float64(n-1) // sample variance
	return Percent(100 * math.Sqrt(variance) * math.Sqrt(12))
}

// drawdowns computes the decline from the running peak at every date, and
// the most negative depth overall.
func drawdowns(dates []Date, values []float64) ([]Drawdown, Percent) {
	series := make([]Drawdown, 0, len(values))
	var peak float64
	var max Percent
	for i, v := range values {
		if v > peak {
			peak = v
		}
		var depth Percent
		if peak > 0 {
			depth = Percent(100 * (v - peak) / peak)
		}
		if depth < max {
			max = depth
		}
		series = append(series, Drawdown{Date: dates[i], Depth: depth})
	}
	return series, max
}

// annualReturns groups the series by calendar year and computes the return
// between the first and last available points inside each year.
func annualReturns(dates []Date, values []float64) []AnnualReturn {
	var returns []AnnualReturn
	for i := 0; i < len(values); {
		year := dates[i].Year()
		first := values[i]
		last := first
		j := i
		for ; j < len(values) && dates[j].Year() == year; j++ {
			last = values[j]
		}
		var ret Percent
		if first != 0 {
			ret = Percent(100 * (last/first - 1))
		}
		returns = append(returns, AnnualReturn{Year: year, ReturnPct: ret})
		i = j
	}
	return returns
}
