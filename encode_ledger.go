package trackfolio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountCmd is a specialized struct to read a ledger amount in two fields.
type amountCmd struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountCmd) Money() Money {
	return M(a.Amount, a.Currency)
}

// DecodeLedger decodes transactions from a stream of JSONL data, one
// transaction per line, and returns a chronologically sorted Ledger.
// Malformed records fail fast with a descriptive error: this is the
// ingestion boundary, not the pure core.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Command CommandType `json:"command"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify command in %q: %w", line, string(lineBytes), err)
		}

		var decodedTx Transaction
		switch identifier.Command {
		case CmdBuy:
			var temp struct {
				secCmd
				amountCmd
				Quantity Quantity `json:"quantity"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: invalid buy: %w", line, err)
			}
			decodedTx = Buy{secCmd: temp.secCmd, Quantity: temp.Quantity, Amount: temp.Money()}
		case CmdSell:
			var temp struct {
				secCmd
				amountCmd
				Quantity Quantity `json:"quantity"`
			}
			if err := json.Unmarshal(lineBytes, &temp); err != nil {
				return nil, fmt.Errorf("line %d: invalid sell: %w", line, err)
			}
			decodedTx = Sell{secCmd: temp.secCmd, Quantity: temp.Quantity, Amount: temp.Money()}
		default:
			return nil, fmt.Errorf("line %d: unknown command %q", line, identifier.Command)
		}
		ledger.Append(decodedTx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return ledger, nil
}

// EncodeTransaction writes a single transaction as one JSONL line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("cannot encode %s transaction: %w", tx.What(), err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeLedger writes the whole ledger in canonical JSONL form: one
// transaction per line, chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for tx := range l.Transactions(nil) {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
