package trackfolio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/jrueegg/trackfolio/date"
)

// Quote is one imported price row.
type Quote struct {
	Date  Date
	Close float64
}

// QuoteFeed describes where the dates and closes live inside a feed
// document, as jsonpath expressions selecting two parallel lists. Provider
// payloads differ wildly in shape but rarely in substance, so a pair of
// paths adapts to most of them without provider-specific code.
type QuoteFeed struct {
	DatePath  string // e.g. "$[*].date"
	ClosePath string // e.g. "$[*].close"
}

// EODFeed matches end-of-day lists of {"date": ..., "close": ...} objects,
// the most common feed shape.
var EODFeed = QuoteFeed{DatePath: "$[*].date", ClosePath: "$[*].close"}

// DecodeQuotes parses a feed document and extracts its quote rows.
func DecodeQuotes(r io.Reader, feed QuoteFeed) ([]Quote, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid feed document: %w", err)
	}
	return feed.Extract(jobj)
}

// Extract pulls the quote rows out of an already-parsed feed document.
func (f QuoteFeed) Extract(jobj any) ([]Quote, error) {
	dates, err := evalList(jobj, f.DatePath)
	if err != nil {
		return nil, fmt.Errorf("extracting dates: %w", err)
	}
	closes, err := evalList(jobj, f.ClosePath)
	if err != nil {
		return nil, fmt.Errorf("extracting closes: %w", err)
	}
	if len(dates) != len(closes) {
		return nil, fmt.Errorf("feed mismatch: %d dates for %d closes", len(dates), len(closes))
	}

	quotes := make([]Quote, 0, len(dates))
	for i := range dates {
		jdate, ok := dates[i].(string)
		if !ok {
			return nil, fmt.Errorf("date %v is not a string", dates[i])
		}
		on, err := date.Parse(jdate)
		if err != nil {
			return nil, err
		}
		close, ok := closes[i].(float64)
		if !ok {
			return nil, fmt.Errorf("close for %s is not a number: %v", on, closes[i])
		}
		quotes = append(quotes, Quote{Date: on, Close: close})
	}
	return quotes, nil
}

// evalList evaluates a jsonpath and normalizes the result to a list.
// jsonpath is never clear about whether it returns a list of one answer or
// a single answer, so a scalar result becomes a one-element list.
func evalList(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		return jlist, nil
	}
	return []any{jval}, nil
}

// ImportQuotes appends the extracted quotes to a declared security,
// overwriting existing closes on the same day.
func ImportQuotes(market *Market, ticker string, quotes []Quote) error {
	sec := market.Get(ticker)
	if sec == nil {
		return fmt.Errorf("security %q not declared in market data", ticker)
	}
	for _, q := range quotes {
		sec.Append(q.Date, q.Close)
	}
	return nil
}
