package macro

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeSet reads an indicator set from its serialized form, a JSON list of
// indicator records, and validates every record at the ingestion boundary.
// The engine neither knows nor cares where the bytes come from.
func DecodeSet(r io.Reader) (Set, error) {
	var raw []Indicator
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("invalid indicator set: %w", err)
	}
	set := make(Set, 0, len(raw))
	var err error
	for _, ind := range raw {
		if set, err = set.Add(ind); err != nil {
			return nil, fmt.Errorf("invalid indicator set: %w", err)
		}
	}
	return set, nil
}

// EncodeSet writes the indicator set as an indented JSON list.
func EncodeSet(w io.Writer, set Set) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(set)
}
