package trackfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jrueegg/trackfolio/date"
)

// Market data is persisted as a single human-readable, git-friendly JSONL
// stream. A line declaring a "ticker" property defines a security; a line
// with an "on" property carries the closes of that day, keyed by ticker:
//
//	{"ticker":"VT","id":"vt","name":"Vanguard Total World","assetType":"equity","currency":"USD","targetPct":60}
//	{"on":"2025-01-31","VT":118.2,"USDCHF":0.91}
//
// Declarations come first so price rows can be checked against them.

const attrOn = "on"

// jsecurity is the declaration record shape, shared by both codec sides.
type jsecurity struct {
	Ticker    string    `json:"ticker"`
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name,omitempty"`
	AssetType AssetType `json:"assetType,omitempty"`
	Currency  string    `json:"currency"`
	TargetPct float64   `json:"targetPct,omitempty"`
}

// DecodeMarket reads security declarations and daily price rows from a
// JSONL stream.
func DecodeMarket(r io.Reader) (*Market, error) {
	market := NewMarket()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Text()
		if strings.TrimSpace(txt) == "" {
			continue
		}

		jobj := make(map[string]any)
		if err := json.Unmarshal([]byte(txt), &jobj); err != nil {
			return nil, fmt.Errorf("line %d: not a correct json: %w", line, err)
		}

		if _, isPriceRow := jobj[attrOn]; !isPriceRow {
			var js jsecurity
			if err := json.Unmarshal([]byte(txt), &js); err != nil {
				return nil, fmt.Errorf("line %d: invalid security: %w", line, err)
			}
			sec := NewSecurity(js.ID, js.Ticker, js.Name, js.AssetType, js.Currency, Percent(js.TargetPct))
			if err := market.Add(sec); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			continue
		}

		if err := decodePriceRow(market, jobj); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading market data: %w", err)
	}
	return market, nil
}

// decodePriceRow appends the closes of one day to the declared securities.
func decodePriceRow(market *Market, jobj map[string]any) error {
	jon, ok := jobj[attrOn].(string)
	if !ok {
		return fmt.Errorf("property %q must be a date string", attrOn)
	}
	on, err := date.Parse(jon)
	if err != nil {
		return err
	}
	for ticker, jval := range jobj {
		if ticker == attrOn {
			continue
		}
		close, ok := jval.(float64)
		if !ok {
			return fmt.Errorf("close for %q on %s is not a number", ticker, on)
		}
		sec := market.Get(ticker)
		if sec == nil {
			return fmt.Errorf("price row for undeclared security %q", ticker)
		}
		sec.Append(on, close)
	}
	return nil
}

// EncodeMarket writes the market data back in its canonical form:
// declarations in declaration order, then one price row per day in
// chronological order.
func EncodeMarket(w io.Writer, market *Market) error {
	days := &date.History[map[string]float64]{}
	for sec := range market.Securities() {
		var jw jsonObjectWriter
		jw.Append("ticker", sec.Ticker())
		jw.Optional("id", sec.ID())
		jw.Optional("name", sec.Name())
		jw.Optional("assetType", sec.AssetType())
		jw.Append("currency", sec.Currency())
		jw.Optional("targetPct", float64(sec.TargetPct()))
		b, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode security %q: %w", sec.Ticker(), err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}

		for on, close := range sec.Prices() {
			row, _ := days.Get(on)
			if row == nil {
				row = make(map[string]float64)
				days.Append(on, row)
			}
			row[sec.Ticker()] = close
		}
	}

	for on, row := range days.Values() {
		var jw jsonObjectWriter
		jw.Append(attrOn, on)
		// tickers in declaration order keeps the output stable
		for sec := range market.Securities() {
			if close, ok := row[sec.Ticker()]; ok {
				jw.Append(sec.Ticker(), close)
			}
		}
		b, err := jw.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode prices on %s: %w", on, err)
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}
