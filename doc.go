// Package trackfolio is the computation core of a personal investment
// tracker. It turns a ledger of buy/sell transactions plus a price history
// into point-in-time valuations, a reconstructed monthly performance series,
// and risk statistics.
//
// Every calculator in this package is a pure function of its inputs: there is
// no internal state, no cache and no side effect, so identical inputs always
// produce identical outputs. The surrounding application is expected to
// re-invoke them whenever the ledger, the market data or the configuration
// changes.
//
// The companion package macro computes the crisis/euphoria sentiment index
// from a set of weighted indicators; it is an independent pipeline with no
// dependency on the portfolio data.
package trackfolio

import "github.com/jrueegg/trackfolio/date"

// Date is the day-granularity date used throughout the ledger and market data.
type Date = date.Date

// NewDate returns a normalized Date for the given year, month, and day.
var NewDate = date.New

// Today returns the current date.
var Today = date.Today

// ParseDate parses a YYYY-MM-DD date string.
var ParseDate = date.Parse
