package mapping

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/ipath/pkg/errors"
)

func TestScaleToRange(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		opts   RangeOptions
		want   []float64
	}{
		{
			name:   "unit range",
			values: []float64{0, 50, 100},
			opts:   RangeOptions{}.WithOutputRange(0, 1),
			want:   []float64{0, 0.5, 1},
		},
		{
			name:   "default output range",
			values: []float64{0, 50, 100},
			want:   []float64{0, 0.5, 1},
		},
		{
			name:   "explicit bounds clip",
			values: []float64{-5, 50, 105},
			opts:   RangeOptions{}.WithOutputRange(0, 1).WithBounds(0, 100),
			want:   []float64{0, 0.5, 1},
		},
		{
			name:   "width range",
			values: []float64{1, 2, 3},
			opts:   RangeOptions{}.WithOutputRange(0, 50),
			want:   []float64{0, 25, 50},
		},
		{
			name:   "offset output range",
			values: []float64{0, 10},
			opts:   RangeOptions{}.WithOutputRange(10, 20),
			want:   []float64{10, 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScaleToRange(tt.values, tt.opts.Quiet())
			if err != nil {
				t.Fatalf("ScaleToRange error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ScaleToRange mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScaleToRangeErrors(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		opts   RangeOptions
		code   errors.Code
	}{
		{"empty", nil, RangeOptions{}, errors.ErrCodeInvalidInput},
		{"descending output", []float64{0, 1}, RangeOptions{}.WithOutputRange(1, 0), errors.ErrCodeDegenerateRange},
		{"flat output", []float64{0, 1}, RangeOptions{}.WithOutputRange(5, 5), errors.ErrCodeDegenerateRange},
		{"zero output", []float64{0, 50, 100}, RangeOptions{}.WithOutputRange(0, 0), errors.ErrCodeDegenerateRange},
		{"NaN value", []float64{0, math.NaN(), 1}, RangeOptions{}, errors.ErrCodeInvalidInput},
		{"infinite value", []float64{0, math.Inf(1)}, RangeOptions{}, errors.ErrCodeInvalidInput},
		{"constant values", []float64{3, 3, 3}, RangeOptions{}, errors.ErrCodeDegenerateRange},
		{"equal bounds", []float64{0, 1}, RangeOptions{}.WithBounds(2, 2), errors.ErrCodeDegenerateRange},
		{"inverted bounds", []float64{0, 1}, RangeOptions{}.WithBounds(2, 1), errors.ErrCodeDegenerateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScaleToRange(tt.values, tt.opts.Quiet())
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestScaleToRangeDoesNotMutate(t *testing.T) {
	values := []float64{-5, 50, 105}
	orig := append([]float64(nil), values...)
	opts := RangeOptions{}.WithBounds(0, 100).Quiet()

	first, err := ScaleToRange(values, opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(orig, values); diff != "" {
		t.Errorf("input was modified (-want +got):\n%s", diff)
	}

	second, err := ScaleToRange(values, opts)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated call differs (-first +second):\n%s", diff)
	}
}

func TestScaleToRangeWarnsOnNegativeMinimum(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	got, err := ScaleToRange([]float64{-10, 0, 10}, RangeOptions{Logger: logger})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "negative") {
		t.Errorf("expected a warning about the negative minimum, got %q", buf.String())
	}
	if diff := cmp.Diff([]float64{0, 0.5, 1}, got); diff != "" {
		t.Errorf("warning changed the result (-want +got):\n%s", diff)
	}

	buf.Reset()
	if _, err := ScaleToRange([]float64{0, 10}, RangeOptions{Logger: logger}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected warning for non-negative data: %q", buf.String())
	}
}
