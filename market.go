package trackfolio

import (
	"fmt"
	"iter"

	"github.com/jrueegg/trackfolio/date"
)

// AssetType categorizes an instrument for allocation reporting.
type AssetType string

// Common asset types. The set is open: any non-empty label groups positions
// in the allocation histories.
const (
	AssetEquity AssetType = "equity"
	AssetBond   AssetType = "bond"
	AssetCrypto AssetType = "crypto"
	AssetMetal  AssetType = "metal"
	AssetCash   AssetType = "cash"
)

// Security is the reference record of a priced instrument: metadata plus its
// quote history. FX pairs are ordinary securities whose ticker is the
// concatenation of the foreign and the reporting currency (e.g. "USDCHF")
// and whose close is the rate.
type Security struct {
	id        string
	ticker    string
	name      string
	assetType AssetType
	currency  string
	targetPct Percent // user-set allocation goal, not time-varying

	prices date.History[float64]
}

// NewSecurity creates a new security record.
func NewSecurity(id, ticker, name string, assetType AssetType, currency string, targetPct Percent) *Security {
	return &Security{
		id:        id,
		ticker:    ticker,
		name:      name,
		assetType: assetType,
		currency:  currency,
		targetPct: targetPct,
	}
}

func (s *Security) ID() string           { return s.id }
func (s *Security) Ticker() string       { return s.ticker }
func (s *Security) Name() string         { return s.name }
func (s *Security) AssetType() AssetType { return s.assetType }
func (s *Security) Currency() string     { return s.currency }
func (s *Security) TargetPct() Percent   { return s.targetPct }

// Prices returns an iterator over the security's quote history.
func (s *Security) Prices() iter.Seq2[Date, float64] { return s.prices.Values() }

// Append records a close price for a day, overwriting any previous quote
// for that exact day.
func (s *Security) Append(on Date, close float64) { s.prices.Append(on, close) }

// PriceAsOf returns the most recent close at or before 'on'.
// Gaps in the series are expected; future quotes are never consulted.
func (s *Security) PriceAsOf(on Date) (float64, bool) { return s.prices.ValueAsOf(on) }

// Market holds the reference data for a set of securities and their
// price histories. It is read-only to the calculators.
type Market struct {
	securities []*Security
	index      map[string]*Security
}

// NewMarket returns a new empty market data collection.
func NewMarket() *Market {
	return &Market{
		securities: make([]*Security, 0),
		index:      make(map[string]*Security),
	}
}

// Add declares a security. The ticker must be unique.
func (m *Market) Add(sec *Security) error {
	if sec.ticker == "" {
		return fmt.Errorf("security %q has no ticker", sec.name)
	}
	if _, exists := m.index[sec.ticker]; exists {
		return fmt.Errorf("security %q already declared", sec.ticker)
	}
	m.securities = append(m.securities, sec)
	m.index[sec.ticker] = sec
	return nil
}

// Has reports whether a ticker is declared.
func (m *Market) Has(ticker string) bool {
	_, ok := m.index[ticker]
	return ok
}

// Get returns the security declared with this ticker, or nil if unknown.
func (m *Market) Get(ticker string) *Security { return m.index[ticker] }

// Securities returns an iterator over all securities in declaration order.
func (m *Market) Securities() iter.Seq[*Security] {
	return func(yield func(*Security) bool) {
		for _, sec := range m.securities {
			if !yield(sec) {
				return
			}
		}
	}
}

// PriceAsOf returns the most recent close for a ticker at or before 'on'.
func (m *Market) PriceAsOf(ticker string, on Date) (float64, bool) {
	sec, ok := m.index[ticker]
	if !ok {
		return 0, false
	}
	return sec.PriceAsOf(on)
}

// RateAsOf returns the conversion rate from 'currency' into 'reporting' at
// or before 'on'. The reporting currency converts at 1. Any other pair is
// looked up as the ordinary security "<currency><reporting>" with the same
// latest-at-or-before rule; there is no separate FX subsystem.
func (m *Market) RateAsOf(currency, reporting string, on Date) (float64, bool) {
	if currency == reporting || currency == "" {
		return 1, true
	}
	return m.PriceAsOf(currency+reporting, on)
}
