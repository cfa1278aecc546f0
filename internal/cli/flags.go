package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/go-playground/colors.v1"

	"github.com/matzehuels/ipath/pkg/errors"
	"github.com/matzehuels/ipath/pkg/ipath"
	"github.com/matzehuels/ipath/pkg/mapping"
	"github.com/matzehuels/ipath/pkg/selection"
)

// =============================================================================
// Selection Flags
// =============================================================================

// selectionFlags holds the flags that turn a data file into selection text.
type selectionFlags struct {
	colorColumn   string
	widthColumn   string
	opacityColumn string

	sequential string
	diverging  string

	widthRange   string
	opacityRange string
	widthVMin    float64
	widthVMax    float64
	opacityVMin  float64
	opacityVMax  float64
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.colorColumn, "color", "", "column mapped to color")
	flags.StringVar(&f.widthColumn, "width", "", "column mapped to line width")
	flags.StringVar(&f.opacityColumn, "opacity", "", "column mapped to opacity")
	flags.StringVar(&f.sequential, "sequential-cmap", "", "colormap for non-negative data (default from config, inferno)")
	flags.StringVar(&f.diverging, "diverging-cmap", "", "colormap for data with negative values (default from config, RdBu_r)")
	flags.StringVar(&f.widthRange, "width-range", "0,50", "output range for widths as lo,hi")
	flags.StringVar(&f.opacityRange, "opacity-range", "0,1", "output range for opacities as lo,hi")
	flags.Float64Var(&f.widthVMin, "width-vmin", 0, "clip width data below this value (default data minimum)")
	flags.Float64Var(&f.widthVMax, "width-vmax", 0, "clip width data above this value (default data maximum)")
	flags.Float64Var(&f.opacityVMin, "opacity-vmin", 0, "clip opacity data below this value (default data minimum)")
	flags.Float64Var(&f.opacityVMax, "opacity-vmax", 0, "clip opacity data above this value (default data maximum)")
}

// options builds selection options. Colormaps not given on the command
// line come from the config file.
func (f *selectionFlags) options(cmd *cobra.Command, c *CLI) (selection.Options, error) {
	cfg := c.cfg
	opts := selection.Options{
		ColorColumn:   f.colorColumn,
		WidthColumn:   f.widthColumn,
		OpacityColumn: f.opacityColumn,
		Color: mapping.ColorOptions{
			Sequential: cfg.SequentialColormap,
			Diverging:  cfg.DivergingColormap,
		},
	}
	if f.sequential != "" {
		opts.Color.Sequential = f.sequential
	}
	if f.diverging != "" {
		opts.Color.Diverging = f.diverging
	}
	if opts.ColorColumn == "" && opts.WidthColumn == "" && opts.OpacityColumn == "" {
		return opts, errors.New(errors.ErrCodeInvalidInput, "at least one of --color, --width or --opacity is required")
	}

	width, err := rangeOptions(cmd, "width", f.widthRange, f.widthVMin, f.widthVMax)
	if err != nil {
		return opts, err
	}
	opacity, err := rangeOptions(cmd, "opacity", f.opacityRange, f.opacityVMin, f.opacityVMax)
	if err != nil {
		return opts, err
	}
	width.Logger = c.Logger
	opacity.Logger = c.Logger
	opts.Width, opts.Opacity = width, opacity
	return opts, nil
}

// rangeOptions reads the --<attr>-range and --<attr>-vmin/vmax flags.
// Bounds are only set when their flag was given; otherwise the data's
// own extremes apply.
func rangeOptions(cmd *cobra.Command, attr, outRange string, vmin, vmax float64) (mapping.RangeOptions, error) {
	lo, hi, err := parseRange(outRange)
	if err != nil {
		return mapping.RangeOptions{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "--%s-range", attr)
	}
	opts := mapping.RangeOptions{}.WithOutputRange(lo, hi)

	if cmd.Flags().Changed(attr + "-vmin") {
		opts.VMin = &vmin
	}
	if cmd.Flags().Changed(attr + "-vmax") {
		opts.VMax = &vmax
	}
	return opts, nil
}

// parseRange parses "lo,hi". Ordering is checked later by the scaler.
func parseRange(s string) (lo, hi float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "range %q must have the form lo,hi", s)
	}
	lo, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "range %q", s)
	}
	hi, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "range %q", s)
	}
	return lo, hi, nil
}

// buildSelection reads the table at path and renders it as selection text.
func (c *CLI) buildSelection(cmd *cobra.Command, path string, f *selectionFlags) (string, error) {
	opts, err := f.options(cmd, c)
	if err != nil {
		return "", err
	}
	table, err := selection.ReadFile(path)
	if err != nil {
		return "", err
	}
	c.Logger.Debug("read table", "path", path, "rows", table.Len(), "columns", table.ColumnNames())
	return selection.Build(table, opts)
}

// =============================================================================
// Request Flags
// =============================================================================

// requestFlags mirrors ipath.Options. Unset flags fall back to the
// config file's [defaults] section.
type requestFlags struct {
	opts ipath.Options
}

func (f *requestFlags) register(cmd *cobra.Command) {
	d := ipath.DefaultOptions()
	flags := cmd.Flags()
	flags.StringVar(&f.opts.ExportType, "export-type", d.ExportType, "export format: "+strings.Join(ipath.ExportTypes, ", "))
	flags.BoolVar(&f.opts.IncludeMetabolic, "include-metabolic", d.IncludeMetabolic, "draw the metabolic pathways map")
	flags.BoolVar(&f.opts.IncludeSecondary, "include-secondary", d.IncludeSecondary, "draw secondary metabolite biosynthesis")
	flags.BoolVar(&f.opts.IncludeAntibiotic, "include-antibiotic", d.IncludeAntibiotic, "draw antibiotic biosynthesis")
	flags.BoolVar(&f.opts.IncludeMicrobial, "include-microbial", d.IncludeMicrobial, "draw microbial metabolism in diverse environments")
	flags.BoolVar(&f.opts.WholeModules, "whole-modules", d.WholeModules, "highlight whole modules containing a selected element")
	flags.BoolVar(&f.opts.WholePathways, "whole-pathways", d.WholePathways, "highlight whole pathways containing a selected element")
	flags.BoolVar(&f.opts.KeepColors, "keep-colors", d.KeepColors, "keep map colors for unselected elements")
	flags.BoolVar(&f.opts.QueryReactions, "query-reactions", d.QueryReactions, "match reaction identifiers")
	flags.Float64Var(&f.opts.DefaultOpacity, "default-opacity", d.DefaultOpacity, "opacity of unselected elements")
	flags.Float64Var(&f.opts.DefaultWidth, "default-width", d.DefaultWidth, "line width of unselected elements")
	flags.Float64Var(&f.opts.DefaultRadius, "default-radius", d.DefaultRadius, "compound circle radius")
	flags.StringVar(&f.opts.DefaultColor, "default-color", d.DefaultColor, "color of unselected elements (#rrggbb or rgb(r,g,b))")
	flags.StringVar(&f.opts.TaxFilter, "tax-filter", d.TaxFilter, "NCBI taxonomy id restricting the map")
	flags.IntVar(&f.opts.ExportDPI, "dpi", d.ExportDPI, "resolution for raster exports")
}

// options merges changed flags over base and validates the result.
func (f *requestFlags) options(cmd *cobra.Command, base ipath.Options) (ipath.Options, error) {
	opts := base
	changed := cmd.Flags().Changed

	if changed("export-type") {
		opts.ExportType = f.opts.ExportType
	}
	if changed("include-metabolic") {
		opts.IncludeMetabolic = f.opts.IncludeMetabolic
	}
	if changed("include-secondary") {
		opts.IncludeSecondary = f.opts.IncludeSecondary
	}
	if changed("include-antibiotic") {
		opts.IncludeAntibiotic = f.opts.IncludeAntibiotic
	}
	if changed("include-microbial") {
		opts.IncludeMicrobial = f.opts.IncludeMicrobial
	}
	if changed("whole-modules") {
		opts.WholeModules = f.opts.WholeModules
	}
	if changed("whole-pathways") {
		opts.WholePathways = f.opts.WholePathways
	}
	if changed("keep-colors") {
		opts.KeepColors = f.opts.KeepColors
	}
	if changed("query-reactions") {
		opts.QueryReactions = f.opts.QueryReactions
	}
	if changed("default-opacity") {
		opts.DefaultOpacity = f.opts.DefaultOpacity
	}
	if changed("default-width") {
		opts.DefaultWidth = f.opts.DefaultWidth
	}
	if changed("default-radius") {
		opts.DefaultRadius = f.opts.DefaultRadius
	}
	if changed("default-color") {
		opts.DefaultColor = f.opts.DefaultColor
	}
	if changed("tax-filter") {
		opts.TaxFilter = f.opts.TaxFilter
	}
	if changed("dpi") {
		opts.ExportDPI = f.opts.ExportDPI
	}

	color, err := normalizeColor(opts.DefaultColor)
	if err != nil {
		return opts, err
	}
	opts.DefaultColor = color

	return opts, opts.Validate()
}

// normalizeColor accepts any color syntax the colors package parses
// (#rgb, #rrggbb, rgb(), rgba()) and returns it as #rrggbb.
func normalizeColor(s string) (string, error) {
	c, err := colors.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidOption, err, "invalid color %q", s)
	}
	return c.ToRGB().ToHEX().String(), nil
}
