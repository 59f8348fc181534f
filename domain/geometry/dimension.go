package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrParse is returned when a Dimension is not a finite, non-negative
// number with an optional "px" or "%" suffix.
var ErrParse = errors.New("geometry: malformed dimension")

// Unit is the unit a Dimension is expressed in.
type Unit int

const (
	UnitPixels Unit = iota
	UnitPercent
)

func (u Unit) String() string {
	switch u {
	case UnitPixels:
		return "px"
	case UnitPercent:
		return "%"
	default:
		return "unknown"
	}
}

// Dimension is a length such as "200px", "50%" or "120" (pixels).
type Dimension string

// Px formats n as a pixel Dimension.
func Px(n int) Dimension { return Dimension(strconv.Itoa(n) + "px") }

// ParseDimension splits d into its numeric magnitude and unit.
func ParseDimension(d Dimension) (float64, Unit, error) {
	s := strings.TrimSpace(string(d))
	unit := UnitPixels
	switch {
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "%"):
		s = strings.TrimSuffix(s, "%")
		unit = UnitPercent
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, unit, fmt.Errorf("%w: %q", ErrParse, string(d))
	}
	if v < 0 {
		return 0, unit, fmt.Errorf("%w: negative %q", ErrParse, string(d))
	}
	return v, unit, nil
}

// ResolvePixels converts d to whole pixels. Percentages are taken of
// reference, which callers pass at resolution time (the viewport extent on
// the matching axis). Fractions are floored.
func ResolvePixels(d Dimension, reference int) (int, error) {
	v, unit, err := ParseDimension(d)
	if err != nil {
		return 0, err
	}
	if unit == UnitPercent {
		v = v * float64(reference) / 100
	}
	return int(math.Floor(v)), nil
}
