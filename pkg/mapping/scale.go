package mapping

import (
	"io"
	"math"

	"github.com/aclements/go-moremath/scale"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/ipath/pkg/errors"
)

// DefaultOutputRange is the output range used when RangeOptions.OutputRange
// is left unset.
var DefaultOutputRange = [2]float64{0, 1}

// RangeOptions configures [ScaleToRange].
type RangeOptions struct {
	// OutputRange is the ascending [lo, hi] target interval.
	// Nil means DefaultOutputRange.
	OutputRange *[2]float64

	// VMin and VMax override the data's own minimum and maximum.
	// Values outside [VMin, VMax] are clipped before scaling.
	VMin *float64
	VMax *float64

	// Logger receives the non-fatal warning emitted when the source range
	// starts below zero. Defaults to log.Default().
	Logger *log.Logger
}

// WithOutputRange returns a copy of o targeting [lo, hi].
func (o RangeOptions) WithOutputRange(lo, hi float64) RangeOptions {
	o.OutputRange = &[2]float64{lo, hi}
	return o
}

// WithBounds returns a copy of o with explicit source bounds.
func (o RangeOptions) WithBounds(vmin, vmax float64) RangeOptions {
	o.VMin, o.VMax = &vmin, &vmax
	return o
}

// outputRange returns the effective output interval.
func (o RangeOptions) outputRange() [2]float64 {
	if o.OutputRange == nil {
		return DefaultOutputRange
	}
	return *o.OutputRange
}

func (o RangeOptions) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// ScaleToRange clips values into [vmin, vmax] and rescales them linearly
// onto the output range. The input slice is not modified.
//
// Errors:
//   - [errors.ErrCodeInvalidInput] if values is empty or holds NaN or ±Inf
//   - [errors.ErrCodeDegenerateRange] if vmax <= vmin, or if the output
//     range is not strictly ascending
//
// If the effective vmin is negative a warning is logged; the result is
// unaffected.
func ScaleToRange(values []float64, opts RangeOptions) ([]float64, error) {
	if len(values) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot scale an empty value sequence")
	}
	if err := checkFinite(values); err != nil {
		return nil, err
	}

	out := opts.outputRange()
	if out[1] <= out[0] {
		return nil, errors.New(errors.ErrCodeDegenerateRange,
			"output range [%g, %g] must be strictly ascending", out[0], out[1])
	}

	vmin, vmax := bounds(values)
	if opts.VMin != nil {
		vmin = *opts.VMin
	}
	if opts.VMax != nil {
		vmax = *opts.VMax
	}
	if vmax <= vmin {
		return nil, errors.New(errors.ErrCodeDegenerateRange,
			"source range [%g, %g] has no span", vmin, vmax)
	}

	if vmin < 0 {
		opts.logger().Warn("minimum of values is negative",
			"from", [2]float64{vmin, vmax}, "to", out)
	}

	s := scale.Linear{Min: vmin, Max: vmax, Clamp: true}
	span := out[1] - out[0]

	scaled := make([]float64, len(values))
	for i, v := range values {
		scaled[i] = s.Map(v)*span + out[0]
	}
	return scaled, nil
}

// discard is a logger that drops everything; handy for callers that want
// to silence range warnings.
var discard = log.NewWithOptions(io.Discard, log.Options{})

// Quiet returns a copy of o that suppresses warnings.
func (o RangeOptions) Quiet() RangeOptions {
	o.Logger = discard
	return o
}

// checkFinite rejects NaN and ±Inf, which would otherwise poison the bounds.
func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New(errors.ErrCodeInvalidInput, "value %d is not finite (%g)", i, v)
		}
	}
	return nil
}
