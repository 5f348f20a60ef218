package macro

import (
	"fmt"
	"math"
	"slices"
)

// Closed update operations for the indicator set. Each field has its own
// operation with its own validation, instead of a generic key/value
// mutation: an unknown field is a compile error here, not a silent no-op.

// Set is an ordered indicator configuration, identified by indicator ID.
type Set []Indicator

// find returns the index of the indicator with this ID, or an error.
func (s Set) find(id string) (int, error) {
	i := slices.IndexFunc(s, func(ind Indicator) bool { return ind.ID == id })
	if i < 0 {
		return 0, fmt.Errorf("indicator %q not found", id)
	}
	return i, nil
}

// Add appends a new indicator after validating it.
func (s Set) Add(ind Indicator) (Set, error) {
	if ind.ID == "" {
		return nil, fmt.Errorf("indicator needs an id")
	}
	if i := slices.IndexFunc(s, func(x Indicator) bool { return x.ID == ind.ID }); i >= 0 {
		return nil, fmt.Errorf("indicator %q already exists", ind.ID)
	}
	if err := validWeight(ind.Weight); err != nil {
		return nil, err
	}
	if err := validDirection(ind.Direction); err != nil {
		return nil, err
	}
	if err := validRange(ind.Min, ind.Max); err != nil {
		return nil, err
	}
	return append(s, ind), nil
}

// Remove deletes an indicator by ID.
func (s Set) Remove(id string) (Set, error) {
	i, err := s.find(id)
	if err != nil {
		return nil, err
	}
	return slices.Delete(s, i, i+1), nil
}

// SetValue updates the current value of an indicator.
func (s Set) SetValue(id string, value float64) (Set, error) {
	i, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("indicator %q: value must be finite", id)
	}
	s[i].Value = value
	return s, nil
}

// SetRange updates the normalization range of an indicator.
// A degenerate min == max range is accepted (it normalizes to neutral).
func (s Set) SetRange(id string, min, max float64) (Set, error) {
	i, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := validRange(min, max); err != nil {
		return nil, fmt.Errorf("indicator %q: %w", id, err)
	}
	s[i].Min, s[i].Max = min, max
	return s, nil
}

// SetWeight updates the raw weight of an indicator.
func (s Set) SetWeight(id string, weight float64) (Set, error) {
	i, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := validWeight(weight); err != nil {
		return nil, fmt.Errorf("indicator %q: %w", id, err)
	}
	s[i].Weight = weight
	return s, nil
}

// SetDirection updates the crisis direction of an indicator.
func (s Set) SetDirection(id string, dir Direction) (Set, error) {
	i, err := s.find(id)
	if err != nil {
		return nil, err
	}
	if err := validDirection(dir); err != nil {
		return nil, fmt.Errorf("indicator %q: %w", id, err)
	}
	s[i].Direction = dir
	return s, nil
}

func validWeight(w float64) error {
	if math.IsNaN(w) || w < 0 || w > 100 {
		return fmt.Errorf("weight must be within [0,100], got %v", w)
	}
	return nil
}

func validDirection(d Direction) error {
	switch d {
	case HighIsCrisis, LowIsCrisis:
		return nil
	default:
		return fmt.Errorf("unknown direction %q", d)
	}
}

func validRange(min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("range bounds must be finite")
	}
	if max < min {
		return fmt.Errorf("range max %v is below min %v", max, min)
	}
	return nil
}
