package trackfolio

import (
	"errors"
	"fmt"
)

// CommandType is a typed string identifying a transaction command.
//
// The set of commands is a closed enumeration: the holdings replay switches
// on the concrete transaction types, never on raw strings, so extending the
// ledger (splits, reinvested dividends, ...) is a deliberate act of adding a
// type and teaching every replay loop about it.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdBuy  CommandType = "buy"
	CmdSell CommandType = "sell"
)

// Transaction defines the common interface for all financial transactions
// recorded in the ledger. Transactions are immutable once recorded.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction.
	When() Date        // When returns the date on which the transaction occurred.
	Equal(Transaction) bool
	Validate(market *Market) (Transaction, error)
}

type baseCmd struct {
	Command CommandType `json:"command"`        // Command specifies the type of transaction.
	Date    Date        `json:"date"`           // Date is the date when the transaction took place.
	Memo    string      `json:"memo,omitempty"` // Memo provides an optional note for the transaction.
}

// What returns the command name for the transaction.
func (t baseCmd) What() CommandType { return t.Command }

// When returns the date of the transaction.
func (t baseCmd) When() Date { return t.Date }

// MarshalJSON implements the json.Marshaler interface for baseCmd.
func (t baseCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", t.Command)
	w.Append("date", t.Date)
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// validate checks the base command fields, defaulting a zero date to today.
func (t *baseCmd) validate() {
	if t.Date == (Date{}) {
		t.Date = Today()
	}
}

// secCmd is a component for instrument-based transactions (buy, sell).
type secCmd struct {
	baseCmd
	Security string `json:"security"` // Security is the ticker of the instrument involved.
}

// validate checks the security command fields against the declared market.
func (t *secCmd) validate(market *Market) error {
	t.baseCmd.validate()
	if t.Security == "" {
		return errors.New("security ticker is missing")
	}
	if market != nil && !market.Has(t.Security) {
		return fmt.Errorf("security %q not declared in market data", t.Security)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface for secCmd.
func (t secCmd) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseCmd)
	w.Append("security", t.Security)
	return w.MarshalJSON()
}

// Buy represents a transaction where a quantity of an instrument is
// purchased for a specified total amount.
type Buy struct {
	secCmd
	Quantity Quantity // Quantity is the number of units bought.
	Amount   Money    // Amount is the total cost of the purchase.
}

// NewBuy creates a buy transaction from a quantity and a unit price.
func NewBuy(on Date, memo, ticker string, quantity, price float64, currency string) Buy {
	return Buy{
		secCmd:   secCmd{baseCmd: baseCmd{Command: CmdBuy, Date: on, Memo: memo}, Security: ticker},
		Quantity: Q(quantity),
		Amount:   M(price, currency).Mul(Q(quantity)),
	}
}

// Validate checks the buy transaction for correctness.
func (t Buy) Validate(market *Market) (Transaction, error) {
	if err := t.secCmd.validate(market); err != nil {
		return nil, err
	}
	if !t.Quantity.IsPositive() {
		return nil, fmt.Errorf("buy %s: quantity must be positive, got %s", t.Security, t.Quantity)
	}
	if t.Amount.IsNegative() {
		return nil, fmt.Errorf("buy %s: amount cannot be negative", t.Security)
	}
	return t, nil
}

// Equal reports whether two transactions are the same buy.
func (t Buy) Equal(other Transaction) bool {
	o, ok := other.(Buy)
	return ok && t.secCmd == o.secCmd && t.Quantity.Equal(o.Quantity) && t.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Buy.
func (t Buy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// Sell represents a transaction where a quantity of an instrument is sold
// for a specified total amount.
type Sell struct {
	secCmd
	Quantity Quantity // Quantity is the number of units sold.
	Amount   Money    // Amount is the total proceeds of the sale.
}

// NewSell creates a sell transaction from a quantity and a unit price.
func NewSell(on Date, memo, ticker string, quantity, price float64, currency string) Sell {
	return Sell{
		secCmd:   secCmd{baseCmd: baseCmd{Command: CmdSell, Date: on, Memo: memo}, Security: ticker},
		Quantity: Q(quantity),
		Amount:   M(price, currency).Mul(Q(quantity)),
	}
}

// Validate checks the sell transaction for correctness.
//
// Selling more than currently held is deliberately not rejected here: the
// resolver is permissive and lets the net quantity go negative. See the
// "oversell" topic in the docs package.
func (t Sell) Validate(market *Market) (Transaction, error) {
	if err := t.secCmd.validate(market); err != nil {
		return nil, err
	}
	if !t.Quantity.IsPositive() {
		return nil, fmt.Errorf("sell %s: quantity must be positive, got %s", t.Security, t.Quantity)
	}
	if t.Amount.IsNegative() {
		return nil, fmt.Errorf("sell %s: amount cannot be negative", t.Security)
	}
	return t, nil
}

// Equal reports whether two transactions are the same sell.
func (t Sell) Equal(other Transaction) bool {
	o, ok := other.(Sell)
	return ok && t.secCmd == o.secCmd && t.Quantity.Equal(o.Quantity) && t.Amount.Equal(o.Amount)
}

// MarshalJSON implements the json.Marshaler interface for Sell.
func (t Sell) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.secCmd)
	w.Append("quantity", t.Quantity)
	w.EmbedFrom(t.Amount)
	return w.MarshalJSON()
}

// BySecurity returns a predicate matching transactions on a given ticker.
func BySecurity(ticker string) func(Transaction) bool {
	return func(tx Transaction) bool {
		switch v := tx.(type) {
		case Buy:
			return v.Security == ticker
		case Sell:
			return v.Security == ticker
		}
		return false
	}
}
