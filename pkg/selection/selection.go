package selection

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/ipath/pkg/mapping"
	"github.com/matzehuels/ipath/pkg/observability"
)

// widthPrefix marks a width token in the selection format.
const widthPrefix = "W"

// DefaultWidthRange is the output range for widths when the caller does
// not set one.
var DefaultWidthRange = [2]float64{0, 50}

// Options selects which columns drive which attribute.
// An empty column name skips that attribute for every row.
type Options struct {
	ColorColumn   string
	WidthColumn   string
	OpacityColumn string

	Color   mapping.ColorOptions
	Width   mapping.RangeOptions // OutputRange defaults to DefaultWidthRange
	Opacity mapping.RangeOptions // OutputRange defaults to mapping.DefaultOutputRange
}

// Build renders t as selection text: one newline-terminated line per row,
// in table order, holding the identifier followed by the row's color,
// width token and opacity (each only if its column was requested).
//
// Errors:
//   - [errors.ErrCodeTypeMismatch] if t is nil or ragged
//   - [errors.ErrCodeInvalidInput] for unknown columns or bad identifiers
//   - any error from [mapping.Colors] or [mapping.ScaleToRange]
func Build(t *Table, opts Options) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	attrs := make([][]string, t.Len())
	var names []string
	add := func(name string, tokens []string) {
		names = append(names, name)
		for i, tok := range tokens {
			attrs[i] = append(attrs[i], tok)
		}
	}

	if opts.ColorColumn != "" {
		tokens, err := colorTokens(t, opts)
		if err != nil {
			return "", err
		}
		add("color", tokens)
	}
	if opts.WidthColumn != "" {
		width := opts.Width
		if width.OutputRange == nil {
			width = width.WithOutputRange(DefaultWidthRange[0], DefaultWidthRange[1])
		}
		tokens, err := rangeTokens(t, opts.WidthColumn, width, widthPrefix)
		if err != nil {
			return "", err
		}
		add("width", tokens)
	}
	if opts.OpacityColumn != "" {
		tokens, err := rangeTokens(t, opts.OpacityColumn, opts.Opacity, "")
		if err != nil {
			return "", err
		}
		add("opacity", tokens)
	}

	var sb strings.Builder
	for i, id := range t.IDs {
		sb.WriteString(id)
		for _, a := range attrs[i] {
			sb.WriteByte(' ')
			sb.WriteString(a)
		}
		sb.WriteByte('\n')
	}
	observability.Selection().OnBuilt(t.Len(), names)
	return sb.String(), nil
}

func colorTokens(t *Table, opts Options) ([]string, error) {
	values, err := t.Column(opts.ColorColumn)
	if err != nil {
		return nil, err
	}
	return mapping.Colors(values, opts.Color)
}

func rangeTokens(t *Table, column string, opts mapping.RangeOptions, prefix string) ([]string, error) {
	values, err := t.Column(column)
	if err != nil {
		return nil, err
	}
	scaled, err := mapping.ScaleToRange(values, opts)
	if err != nil {
		return nil, err
	}
	tokens := make([]string, len(scaled))
	for i, v := range scaled {
		tokens[i] = prefix + FormatNumber(v)
	}
	return tokens, nil
}

// FormatNumber renders v as the shortest decimal that round-trips, always
// keeping a fractional part so integral values read as "25.0". Very small
// and very large magnitudes use exponent notation.
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	var s string
	if abs := math.Abs(v); abs == 0 || (abs >= 1e-4 && abs < 1e16) {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	} else {
		s = strconv.FormatFloat(v, 'e', -1, 64)
	}
	if strings.ContainsAny(s, ".e") {
		return s
	}
	return s + ".0"
}
