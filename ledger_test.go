package trackfolio

import (
	"testing"

	"github.com/jrueegg/trackfolio/date"
)

func TestLedgerHoldings(t *testing.T) {
	ledger := NewLedger(
		NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"),
		NewSell(date.MustParse("2025-03-02"), "", "VT", 4, 120, "USD"),
		NewBuy(date.MustParse("2025-02-01"), "", "GLD", 2, 180, "USD"),
	)

	tests := []struct {
		name   string
		on     string
		ticker string
		want   float64
	}{
		{"before first buy", "2025-01-09", "VT", 0},
		{"on buy date", "2025-01-10", "VT", 10},
		{"between", "2025-02-15", "VT", 10},
		{"after sell", "2025-03-02", "VT", 6},
		{"other ticker unaffected", "2025-03-02", "GLD", 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ledger.Position(tc.ticker, date.MustParse(tc.on))
			if !got.Equal(Q(tc.want)) {
				t.Errorf("Position(%s, %s) = %s, want %v", tc.ticker, tc.on, got, tc.want)
			}
		})
	}
}

func TestLedgerOversellGoesNegative(t *testing.T) {
	ledger := NewLedger(
		NewBuy(date.MustParse("2025-01-10"), "", "VT", 5, 100, "USD"),
		NewSell(date.MustParse("2025-01-20"), "", "VT", 8, 100, "USD"),
	)
	got := ledger.Position("VT", date.MustParse("2025-01-31"))
	if !got.Equal(Q(-3)) {
		t.Errorf("Position() = %s, want -3", got)
	}

	// the ticker stays in the replay even at zero
	ledger.Append(NewBuy(date.MustParse("2025-01-25"), "", "VT", 3, 100, "USD"))
	holdings := ledger.Holdings(date.MustParse("2025-01-31"))
	q, ok := holdings["VT"]
	if !ok {
		t.Fatal("ticker dropped from holdings at net zero")
	}
	if !q.IsZero() {
		t.Errorf("Holdings()[VT] = %s, want 0", q)
	}
}

func TestLedgerSortsByDateOnly(t *testing.T) {
	// appended out of order, same-date entries keep insertion order
	first := NewBuy(date.MustParse("2025-02-01"), "first", "VT", 1, 100, "USD")
	second := NewSell(date.MustParse("2025-02-01"), "second", "VT", 1, 100, "USD")
	earlier := NewBuy(date.MustParse("2025-01-01"), "", "VT", 1, 100, "USD")

	ledger := NewLedger()
	ledger.Append(first, second)
	ledger.Append(earlier)

	var got []Transaction
	for tx := range ledger.Transactions(nil) {
		got = append(got, tx)
	}
	if len(got) != 3 {
		t.Fatalf("Len() = %d, want 3", len(got))
	}
	if !got[0].Equal(earlier) {
		t.Errorf("got[0] = %v, want the earlier buy", got[0])
	}
	if !got[1].Equal(first) || !got[2].Equal(second) {
		t.Error("same-date transactions did not keep insertion order")
	}

	if earliest := ledger.Earliest(); earliest != date.MustParse("2025-01-01") {
		t.Errorf("Earliest() = %s", earliest)
	}
}

func TestLedgerBySecurity(t *testing.T) {
	ledger := NewLedger(
		NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"),
		NewBuy(date.MustParse("2025-01-11"), "", "GLD", 1, 180, "USD"),
	)
	var count int
	for range ledger.Transactions(BySecurity("VT")) {
		count++
	}
	if count != 1 {
		t.Errorf("got %d transactions for VT, want 1", count)
	}
}

func TestTransactionValidate(t *testing.T) {
	market := NewMarket()
	if err := market.Add(NewSecurity("vt", "VT", "Vanguard Total World", AssetEquity, "USD", 60)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		tx      Transaction
		wantErr bool
	}{
		{"valid buy", NewBuy(date.MustParse("2025-01-10"), "", "VT", 10, 100, "USD"), false},
		{"zero quantity", NewBuy(date.MustParse("2025-01-10"), "", "VT", 0, 100, "USD"), true},
		{"negative quantity", NewSell(date.MustParse("2025-01-10"), "", "VT", -1, 100, "USD"), true},
		{"undeclared ticker", NewBuy(date.MustParse("2025-01-10"), "", "ZZZ", 1, 100, "USD"), true},
		{"missing ticker", NewBuy(date.MustParse("2025-01-10"), "", "", 1, 100, "USD"), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.tx.Validate(market)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
