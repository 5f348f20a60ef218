package date

import (
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	tests := []struct {
		name string
		got  Date
		want string
	}{
		{"plain", New(2025, time.July, 14), "2025-07-14"},
		{"month overflow", New(2025, 13, 1), "2026-01-01"},
		{"day overflow", New(2025, time.January, 32), "2025-02-01"},
		{"day zero", New(2025, time.March, 0), "2025-02-28"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.got.String(); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	on, err := Parse("2025-07-14")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if on != New(2025, time.July, 14) {
		t.Errorf("Parse() = %s", on)
	}

	// lenient on single digit month and day
	on, err = Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if on != New(2025, time.July, 1) {
		t.Errorf("Parse() = %s", on)
	}

	if _, err := Parse("not-a-date"); err == nil {
		t.Error("Parse() expected an error")
	}
}

func TestEndOfMonth(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-01-15", "2025-01-31"},
		{"2025-02-01", "2025-02-28"},
		{"2024-02-10", "2024-02-29"}, // leap year
		{"2025-12-31", "2025-12-31"},
	}
	for _, tc := range tests {
		if got := MustParse(tc.in).EndOfMonth(); got.String() != tc.want {
			t.Errorf("EndOfMonth(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMonthEnds(t *testing.T) {
	collect := func(from, to Date) []string {
		var got []string
		for on := range MonthEnds(from, to) {
			got = append(got, on.String())
		}
		return got
	}

	got := collect(MustParse("2025-01-10"), MustParse("2025-04-15"))
	want := []string{"2025-01-31", "2025-02-28", "2025-03-31", "2025-04-15"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: got %s, want %s", i, got[i], want[i])
		}
	}

	// 'to' on a month end is yielded exactly once
	got = collect(MustParse("2025-01-10"), MustParse("2025-02-28"))
	want = []string{"2025-01-31", "2025-02-28"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}

	// empty range
	if got := collect(MustParse("2025-03-01"), MustParse("2025-02-01")); got != nil {
		t.Errorf("got %v, want empty", got)
	}
}

func TestCompareOrdering(t *testing.T) {
	a, b := MustParse("2025-01-31"), MustParse("2025-02-01")
	if !a.Before(b) || b.Before(a) {
		t.Error("Before() is inconsistent")
	}
	if !b.After(a) {
		t.Error("After() is inconsistent")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare() is inconsistent")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	on := New(2025, time.July, 4)
	data, err := on.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-07-04"` {
		t.Errorf("MarshalJSON() = %s", data)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatal(err)
	}
	if back != on {
		t.Errorf("round trip: got %s, want %s", back, on)
	}
}
