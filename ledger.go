package trackfolio

import (
	"iter"
	"sort"
)

// Ledger is the ordered record of all transactions.
//
// Transactions are kept in chronological order; among transactions of the
// same date, insertion order is preserved (stable sort) so that a replay of
// the ledger is deterministic.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: append(make([]Transaction, 0, len(txs)), txs...)}
	l.stableSort()
	return l
}

// Append records transactions, keeping the ledger chronologically sorted.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts transactions by date only. Date is the sole ordering
// key; ties keep their insertion order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].When().Before(l.transactions[j].When())
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Earliest returns the date of the first transaction, or the zero Date for
// an empty ledger.
func (l *Ledger) Earliest() Date {
	if len(l.transactions) == 0 {
		return Date{}
	}
	return l.transactions[0].When()
}

// Transactions returns an iterator over transactions matching the predicate,
// in chronological order. A nil predicate matches everything.
func (l *Ledger) Transactions(predicate func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if predicate != nil && !predicate(tx) {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// upTo returns an iterator over all transactions dated at or before 'on'.
func (l *Ledger) upTo(on Date) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if tx.When().After(on) {
				break
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// Holdings replays the ledger up to (and including) 'on' and returns the net
// quantity held per ticker.
//
// Tickers with historical activity stay in the map even when their net
// quantity is zero; consumers that care about live positions filter on
// positive quantity. Overselling is not clamped: a sell exceeding the held
// quantity drives the net quantity negative, reflecting the input data.
func (l *Ledger) Holdings(on Date) map[string]Quantity {
	holdings := make(map[string]Quantity)
	for tx := range l.upTo(on) {
		switch v := tx.(type) {
		case Buy:
			holdings[v.Security] = holdings[v.Security].Add(v.Quantity)
		case Sell:
			holdings[v.Security] = holdings[v.Security].Sub(v.Quantity)
		}
	}
	return holdings
}

// Position replays the ledger and returns the net quantity of a single
// ticker at 'on'.
func (l *Ledger) Position(ticker string, on Date) Quantity {
	var position Quantity
	for tx := range l.upTo(on) {
		switch v := tx.(type) {
		case Buy:
			if v.Security == ticker {
				position = position.Add(v.Quantity)
			}
		case Sell:
			if v.Security == ticker {
				position = position.Sub(v.Quantity)
			}
		}
	}
	return position
}
