package trackfolio

// Snapshot is a view of the portfolio at a single point in time. It is a
// stateless calculator: every value is computed on the fly by replaying the
// ledger up to its 'on' date against the market data, so two snapshots built
// from the same inputs are indistinguishable.
type Snapshot struct {
	ledger *Ledger
	market *Market
	cur    string // reporting currency
	on     Date
}

// NewSnapshot creates a snapshot of the portfolio on a given date, with all
// monetary values expressed in the reporting currency.
func NewSnapshot(ledger *Ledger, market *Market, reportingCurrency string, on Date) *Snapshot {
	return &Snapshot{ledger: ledger, market: market, cur: reportingCurrency, on: on}
}

// On returns the date of the snapshot.
func (s *Snapshot) On() Date { return s.on }

// Currency returns the reporting currency of the snapshot.
func (s *Snapshot) Currency() string { return s.cur }

// Position returns the net quantity of a ticker held on the snapshot's date.
func (s *Snapshot) Position(ticker string) Quantity {
	return s.ledger.Position(ticker, s.on)
}

// MarketValue returns the value of a single position in the reporting
// currency. The boolean reports whether a price (and exchange rate) was
// available at or before the snapshot's date; when it is false the value is
// zero and the caller can tell "no data" apart from "worthless".
func (s *Snapshot) MarketValue(ticker string) (Money, bool) {
	sec := s.market.Get(ticker)
	if sec == nil {
		return M(0, s.cur), false
	}
	close, ok := sec.PriceAsOf(s.on)
	if !ok {
		return M(0, s.cur), false
	}
	rate, ok := s.market.RateAsOf(sec.Currency(), s.cur, s.on)
	if !ok {
		return M(0, s.cur), false
	}
	value := M(close, sec.Currency()).Mul(s.Position(ticker))
	return value.MulRate(newDecimal(rate), s.cur), true
}

// Invested returns the net cash deployed into the portfolio up to the
// snapshot's date: buy amounts minus sell amounts, each converted into the
// reporting currency at its own transaction-date rate, never re-valued at
// current prices.
//
// A flow whose exchange rate is unknown at the transaction date is excluded,
// the same data-completeness treatment as an unpriced position.
func (s *Snapshot) Invested() Money {
	invested := M(0, s.cur)
	for tx := range s.ledger.upTo(s.on) {
		switch v := tx.(type) {
		case Buy:
			rate, ok := s.market.RateAsOf(v.Amount.Currency(), s.cur, v.When())
			if !ok {
				continue
			}
			invested = invested.Add(v.Amount.MulRate(newDecimal(rate), s.cur))
		case Sell:
			rate, ok := s.market.RateAsOf(v.Amount.Currency(), s.cur, v.When())
			if !ok {
				continue
			}
			invested = invested.Sub(v.Amount.MulRate(newDecimal(rate), s.cur))
		}
	}
	return invested
}

// PositionValue is the valuation of one live position.
type PositionValue struct {
	Security   *Security
	Quantity   Quantity
	Value      Money   // in the reporting currency; zero when unpriced
	Priced     bool    // false when no quote or rate exists at or before the date
	CurrentPct Percent // share of the priced total value, 0 when the total is 0
	TargetPct  Percent // copied unmodified from the security record
}

// PortfolioState is the full point-in-time valuation of the portfolio.
// It is recomputed on every call and never persisted.
type PortfolioState struct {
	On         Date
	Currency   string
	Positions  []PositionValue // in security declaration order
	TotalValue Money           // sum of priced position values
	Invested   Money           // net cash deployed
	Balance    Money           // TotalValue - Invested
	BalancePct Percent         // Balance / Invested, 0 when Invested is 0
}

// State assembles the portfolio state on the snapshot's date.
//
// Only strictly positive quantities become positions. Unpriced positions are
// kept in the list with Priced=false but excluded from the total and from
// every percentage, so the aggregates never mis-state what could be priced.
func (s *Snapshot) State() *PortfolioState {
	holdings := s.ledger.Holdings(s.on)

	state := &PortfolioState{
		On:         s.on,
		Currency:   s.cur,
		TotalValue: M(0, s.cur),
	}
	for sec := range s.market.Securities() {
		quantity, held := holdings[sec.Ticker()]
		if !held || !quantity.IsPositive() {
			continue
		}
		value, priced := s.MarketValue(sec.Ticker())
		state.Positions = append(state.Positions, PositionValue{
			Security:  sec,
			Quantity:  quantity,
			Value:     value,
			Priced:    priced,
			TargetPct: sec.TargetPct(),
		})
		if priced {
			state.TotalValue = state.TotalValue.Add(value)
		}
	}

	// Percentages need the final total; 0 when nothing could be priced.
	total := state.TotalValue.AsFloat()
	if total != 0 {
		for i := range state.Positions {
			if state.Positions[i].Priced {
				state.Positions[i].CurrentPct = Percent(100 * state.Positions[i].Value.AsFloat() / total)
			}
		}
	}

	state.Invested = s.Invested()
	state.Balance = state.TotalValue.Sub(state.Invested)
	if invested := state.Invested.AsFloat(); invested != 0 {
		state.BalancePct = Percent(100 * state.Balance.AsFloat() / invested)
	}
	return state
}
