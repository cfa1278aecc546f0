package mapping

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/matzehuels/ipath/pkg/colormap"
	"github.com/matzehuels/ipath/pkg/errors"
)

// ColorOptions selects the colormaps used by [Colors].
// Empty names fall back to [colormap.DefaultSequential] and
// [colormap.DefaultDiverging].
type ColorOptions struct {
	Sequential string // used when every value is non-negative (default "inferno")
	Diverging  string // used when any value is negative (default "RdBu_r")
}

// Colors maps each value to an iPath color code of the form "RGB(r,g,b)".
//
// If every value is non-negative, the sequential colormap is used and the
// data's own [min, max] is stretched over the colormap; a constant
// sequence maps entirely to the colormap's low end. If any value is
// negative, extreme = max(|v|) and [-extreme, extreme] is mapped onto the
// diverging colormap, placing zero at its center.
//
// An empty sequence, or one holding NaN or ±Inf, fails with
// [errors.ErrCodeInvalidInput]. An unknown
// colormap name fails with [errors.ErrCodeInvalidOption].
func Colors(values []float64, opts ColorOptions) ([]string, error) {
	if len(values) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot map an empty value sequence to colors")
	}
	if err := checkFinite(values); err != nil {
		return nil, err
	}

	norm, name := colorScale(values, opts)
	cm, err := colormap.Lookup(name)
	if err != nil {
		return nil, err
	}

	codes := make([]string, len(values))
	for i, v := range values {
		r, g, b := cm.RGB(norm(v))
		codes[i] = FormatRGB(r, g, b)
	}
	return codes, nil
}

// FormatRGB renders 8-bit channels in iPath's color syntax.
func FormatRGB(r, g, b uint8) string {
	return fmt.Sprintf("RGB(%d,%d,%d)", r, g, b)
}

// colorScale picks the colormap for values and returns the function that
// normalizes a value into the colormap's [0, 1] domain.
func colorScale(values []float64, opts ColorOptions) (func(float64) float64, string) {
	lo, hi := bounds(values)

	if lo >= 0 {
		name := opts.Sequential
		if name == "" {
			name = colormap.DefaultSequential
		}
		if lo == hi {
			return func(float64) float64 { return 0 }, name
		}
		s := scale.Linear{Min: lo, Max: hi}
		return s.Map, name
	}

	name := opts.Diverging
	if name == "" {
		name = colormap.DefaultDiverging
	}
	extreme := math.Max(math.Abs(lo), math.Abs(hi))
	s := scale.Linear{Min: -extreme, Max: extreme}
	return s.Map, name
}

// bounds returns the minimum and maximum of a non-empty slice.
func bounds(values []float64) (lo, hi float64) {
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
