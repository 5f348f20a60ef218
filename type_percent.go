package trackfolio

import (
	"fmt"
	"math"
)

// Percent represents a percentage value, where 10.0 means 10%.
type Percent float64

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// SignedString is String with an explicit sign, and "-" for zero or NaN.
func (p Percent) SignedString() string {
	if p == 0 || math.IsNaN(float64(p)) {
		return "-"
	}
	if p > 0 {
		return "+" + p.String()
	}
	return p.String()
}
