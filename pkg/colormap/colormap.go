package colormap

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/aclements/go-gg/palette"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/ipath/pkg/errors"
)

// reverseSuffix marks a reversed colormap name.
const reverseSuffix = "_r"

// Default colormap names used by the value mapper.
const (
	DefaultSequential = "inferno"
	DefaultDiverging  = "RdBu_r"
)

// stops holds the reference samples for each base colormap, low to high.
var stops = map[string][]string{
	"inferno": {
		"#000004", "#160b39", "#420a68", "#6a176e", "#932667", "#bc3754",
		"#dd513a", "#f37819", "#fca50a", "#f6d746", "#fcffa4",
	},
	"viridis": {
		"#440154", "#482475", "#414487", "#355f8d", "#2a788e", "#21918c",
		"#22a884", "#44bf70", "#7ad151", "#bddf26", "#fde725",
	},
	"magma": {
		"#000004", "#140e36", "#3b0f70", "#641a80", "#8c2981", "#b73779",
		"#de4968", "#f7705c", "#fe9f6d", "#fecf92", "#fcfdbf",
	},
	"plasma": {
		"#0d0887", "#41049d", "#6a00a8", "#8f0da4", "#b12a90", "#cc4778",
		"#e16462", "#f2844b", "#fca636", "#fcce25", "#f0f921",
	},
	"Greys": {"#ffffff", "#000000"},
	"RdBu": {
		"#67001f", "#b2182b", "#d6604d", "#f4a582", "#fddbc7", "#f7f7f7",
		"#d1e5f0", "#92c5de", "#4393c3", "#2166ac", "#053061",
	},
	"PiYG": {
		"#8e0152", "#c51b7d", "#de77ae", "#f1b6da", "#fde0ef", "#f7f7f7",
		"#e6f5d0", "#b8e186", "#7fbc41", "#4d9221", "#276419",
	},
	"PuOr": {
		"#7f3b08", "#b35806", "#e08214", "#fdb863", "#fee0b6", "#f7f7f7",
		"#d8daeb", "#b2abd2", "#8073ac", "#542788", "#2d004b",
	},
	"coolwarm": {
		"#3b4cc0", "#5977e3", "#7b9ff9", "#9ebeff", "#c0d4f5", "#dddcdc",
		"#f2cbb7", "#f7ac8e", "#ee8468", "#d65244", "#b40426",
	},
	"bwr": {"#0000ff", "#ffffff", "#ff0000"},
}

// Colormap is a named continuous palette over [0, 1].
// The zero value is not usable; obtain one with [Lookup].
type Colormap struct {
	name     string
	segments int
	gradient palette.RGBGradient
}

// Name returns the name the colormap was looked up by (including any "_r").
func (c Colormap) Name() string { return c.name }

var _ palette.Continuous = Colormap{}

// Map returns the color at x. Values outside [0, 1] are clamped.
func (c Colormap) Map(x float64) color.Color {
	// The gradient starts with a duplicate of the first stop, since
	// RGBGradient does not interpolate within its first segment.
	return c.gradient.Map((x*float64(c.segments) + 1) / float64(c.segments+1))
}

// RGB returns the 8-bit red, green and blue channels at x, dropping alpha.
func (c Colormap) RGB(x float64) (r, g, b uint8) {
	rgba := color.RGBAModel.Convert(c.Map(x)).(color.RGBA)
	return rgba.R, rgba.G, rgba.B
}

// Lookup returns the colormap registered under name. A trailing "_r"
// reverses any base colormap. Unknown names fail with
// [errors.ErrCodeInvalidOption], listing the available names.
func Lookup(name string) (Colormap, error) {
	base, reversed := name, false
	if _, ok := stops[base]; !ok && strings.HasSuffix(name, reverseSuffix) {
		base, reversed = strings.TrimSuffix(name, reverseSuffix), true
	}

	hexes, ok := stops[base]
	if !ok {
		return Colormap{}, errors.New(errors.ErrCodeInvalidOption,
			"unknown colormap %q (must be one of: %s, optionally suffixed with %q)",
			name, strings.Join(Names(), ", "), reverseSuffix)
	}

	colors, err := parseStops(hexes)
	if err != nil {
		return Colormap{}, errors.Wrap(errors.ErrCodeInternal, err, "colormap %q", base)
	}
	if reversed {
		for i, j := 0, len(colors)-1; i < j; i, j = i+1, j-1 {
			colors[i], colors[j] = colors[j], colors[i]
		}
	}
	padded := append([]color.RGBA{colors[0]}, colors...)
	return Colormap{
		name:     name,
		segments: len(colors) - 1,
		gradient: palette.RGBGradient{Colors: padded},
	}, nil
}

// MustLookup is like [Lookup] but panics if name is unknown.
// It is intended for package-level variables with constant names.
func MustLookup(name string) Colormap {
	c, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the base colormap names in sorted order.
func Names() []string {
	names := make([]string, 0, len(stops))
	for name := range stops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseStops(hexes []string) ([]color.RGBA, error) {
	out := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		r, g, b := c.RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out, nil
}
