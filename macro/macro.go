// Package macro computes a single crisis/euphoria sentiment index from a
// small, user-edited set of weighted indicators.
//
// Each indicator is normalized onto a [0,1] "distance toward crisis" scale
// given its direction and configured range, then blended by relative weight
// into a composite index. The pipeline is independent of the portfolio data
// and, like the rest of the engine, pure: configuration in, numbers out.
package macro

import "math"

// Direction states which end of an indicator's range signals crisis.
type Direction string

const (
	// HighIsCrisis marks indicators that rise under stress (e.g. volatility).
	HighIsCrisis Direction = "high_is_crisis"
	// LowIsCrisis marks indicators that fall under stress (e.g. consumer confidence).
	LowIsCrisis Direction = "low_is_crisis"
)

// Phase is the discrete market regime derived from the composite index.
type Phase string

const (
	Crisis   Phase = "crisis"   // index above 0.60
	Neutral  Phase = "neutral"  // index within [0.40, 0.60]
	Euphoria Phase = "euphoria" // index below 0.40
)

// Thresholds of the neutral band. The boundary values belong to the neutral
// band: only a strict crossing triggers the extreme phases.
const (
	euphoriaBelow = 0.40
	crisisAbove   = 0.60
)

// Indicator is the user-edited configuration of one macro indicator.
// The engine treats it as input only; persistence is the caller's concern.
type Indicator struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Unit      string    `json:"unit,omitempty"`
	Value     float64   `json:"value"`
	Min       float64   `json:"min"`
	Max       float64   `json:"max"`
	Weight    float64   `json:"weight"` // raw weight on a 0-100 scale; only ratios matter
	Direction Direction `json:"direction"`
}

// Row is an indicator extended with its computed normalization and its
// contribution to the composite. Ephemeral, recomputed per call.
type Row struct {
	Indicator
	Normalized float64 // in [0,1]
	Weighted   float64 // normalized x weight/totalWeight, in [0,1]
}

// Report is the computed composite: the index on [0,1] where 1 denotes
// maximal crisis signal, its discrete phase, and one row per indicator in
// input order.
type Report struct {
	Index float64
	Phase Phase
	Rows  []Row
}

// clamp saturates v into [0,1].
func clamp(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Normalize maps a raw indicator value onto the [0,1] crisis scale.
//
// A zero-range configuration carries no discriminative signal and resolves
// to the neutral 0.5; it is a degeneracy, not an error. Values outside the
// configured range saturate silently.
func Normalize(value, min, max float64, dir Direction) float64 {
	if max == min {
		return 0.5
	}
	p := (value - min) / (max - min)
	if dir == LowIsCrisis {
		p = 1 - p
	}
	return clamp(p)
}

// ComputeIndex blends the indicators into the composite index.
//
// Contributions are proportional to relative weight, so weights need not sum
// to 100. When the total weight is zero (including an empty set) the
// aggregate is undefined by proportion and resolves to the neutral 0.5,
// with every row carrying a zero contribution; there is never a division
// by zero.
func ComputeIndex(indicators []Indicator) Report {
	var totalWeight float64
	for _, ind := range indicators {
		totalWeight += ind.Weight
	}

	rows := make([]Row, 0, len(indicators))
	var index float64
	for _, ind := range indicators {
		row := Row{
			Indicator:  ind,
			Normalized: Normalize(ind.Value, ind.Min, ind.Max, ind.Direction),
		}
		if totalWeight != 0 {
			row.Weighted = row.Normalized * ind.Weight / totalWeight
		}
		index += row.Weighted
		rows = append(rows, row)
	}
	if totalWeight == 0 {
		index = 0.5
	}
	index = clamp(index)

	return Report{Index: index, Phase: PhaseOf(index), Rows: rows}
}

// PhaseOf maps a composite index to its discrete phase.
func PhaseOf(index float64) Phase {
	switch {
	case index > crisisAbove:
		return Crisis
	case index < euphoriaBelow:
		return Euphoria
	default:
		return Neutral
	}
}

// GaugeScore rescales the crisis-oriented index to the user-facing,
// euphoria-oriented 0-100 scale: 100 is maximal euphoria, 0 maximal crisis.
func GaugeScore(index float64) int {
	return int(math.Round((1 - index) * 100))
}
