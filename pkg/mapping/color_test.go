package mapping

import (
	"math"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/ipath/pkg/colormap"
	"github.com/matzehuels/ipath/pkg/errors"
)

var rgbRE = regexp.MustCompile(`^RGB\(\d{1,3},\d{1,3},\d{1,3}\)$`)

func TestColorsFormat(t *testing.T) {
	got, err := Colors([]float64{0, 5, 10}, ColorOptions{})
	if err != nil {
		t.Fatalf("Colors error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for _, c := range got {
		if !rgbRE.MatchString(c) {
			t.Errorf("color %q does not match RGB(r,g,b)", c)
		}
	}
}

func TestColorsSequentialPreservesOrder(t *testing.T) {
	values := []float64{0, 5, 10}
	cm := colormap.MustLookup(colormap.DefaultSequential)

	prev := -1.0
	for _, v := range values {
		c, _ := colorful.MakeColor(cm.Map(v / 10))
		l, _, _ := c.Lab()
		if l <= prev {
			t.Fatalf("lightness not increasing at %v", v)
		}
		prev = l
	}

	got, err := Colors(values, ColorOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := make([]string, len(values))
	for i, v := range values {
		want[i] = FormatRGB(cm.RGB(v / 10))
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sequential colors mismatch (-want +got):\n%s", diff)
	}
}

func TestColorsDivergingCentersZero(t *testing.T) {
	values := []float64{-10, -5, 0, 20}
	cm := colormap.MustLookup(colormap.DefaultDiverging)

	got, err := Colors(values, ColorOptions{})
	if err != nil {
		t.Fatal(err)
	}

	// extreme = 20, so the normalized positions are 0.25, 0.375, 0.5, 1.
	want := []string{
		FormatRGB(cm.RGB(0.25)),
		FormatRGB(cm.RGB(0.375)),
		FormatRGB(cm.RGB(0.5)),
		FormatRGB(cm.RGB(1)),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diverging colors mismatch (-want +got):\n%s", diff)
	}

	r, g, b := cm.RGB(0.5)
	if r < 240 || g < 240 || b < 240 {
		t.Errorf("zero should map to the near-white center, got %s", got[2])
	}
}

func TestColorsConstantSequence(t *testing.T) {
	got, err := Colors([]float64{4, 4}, ColorOptions{})
	if err != nil {
		t.Fatal(err)
	}
	low := FormatRGB(colormap.MustLookup(colormap.DefaultSequential).RGB(0))
	for i, c := range got {
		if c != low {
			t.Errorf("got[%d] = %s, want %s", i, c, low)
		}
	}
}

func TestColorsCustomColormaps(t *testing.T) {
	opts := ColorOptions{Sequential: "viridis", Diverging: "PiYG"}

	got, err := Colors([]float64{0, 1}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if want := FormatRGB(colormap.MustLookup("viridis").RGB(1)); got[1] != want {
		t.Errorf("sequential override: got %s, want %s", got[1], want)
	}

	got, err = Colors([]float64{-1, 1}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if want := FormatRGB(colormap.MustLookup("PiYG").RGB(0)); got[0] != want {
		t.Errorf("diverging override: got %s, want %s", got[0], want)
	}
}

func TestColorsErrors(t *testing.T) {
	if _, err := Colors(nil, ColorOptions{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty input: error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
	if _, err := Colors([]float64{1}, ColorOptions{Sequential: "rainbow"}); !errors.Is(err, errors.ErrCodeInvalidOption) {
		t.Errorf("unknown colormap: error = %v, want %v", err, errors.ErrCodeInvalidOption)
	}
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Colors([]float64{0, v, 1}, ColorOptions{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("value %g: error = %v, want %v", v, err, errors.ErrCodeInvalidInput)
		}
	}
}

func TestColorsIdempotent(t *testing.T) {
	values := []float64{-10, -5, 0, 20}
	first, err := Colors(values, ColorOptions{})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Colors(values, ColorOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated call differs (-first +second):\n%s", diff)
	}
}
