package ipath

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/ipath/pkg/errors"
)

// Export types accepted by the rendering endpoint.
const (
	ExportSVG = "svg"
	ExportPNG = "png"
	ExportPDF = "pdf"
	ExportEPS = "eps"
)

// ExportTypes lists the valid export types in the order they are reported.
var ExportTypes = []string{ExportSVG, ExportPNG, ExportPDF, ExportEPS}

// Form keys understood by the service.
const (
	keySelection         = "selection"
	keyExportType        = "export_type"
	keyKeepColors        = "keep_colors"
	keyIncludeMetabolic  = "include_metabolic"
	keyIncludeSecondary  = "include_secondary"
	keyIncludeAntibiotic = "include_antibiotic"
	keyIncludeMicrobial  = "include_microbial"
	keyWholeModules      = "whole_modules"
	keyDefaultOpacity    = "default_opacity"
	keyWholePathways     = "whole_pathways"
	keyDefaultWidth      = "default_width"
	keyDefaultColor      = "default_color"
	keyDefaultRadius     = "default_radius"
	keyQueryReactions    = "query_reactions"
	keyTaxFilter         = "tax_filter"
	keyExportDPI         = "export_dpi"
)

// Options holds the rendering options sent with every request.
// Field tags name the TOML keys used by the CLI configuration file.
type Options struct {
	ExportType string `toml:"export_type"` // svg, png, pdf or eps

	IncludeMetabolic  bool `toml:"include_metabolic"`  // draw the metabolic pathways map
	IncludeSecondary  bool `toml:"include_secondary"`  // draw secondary metabolite biosynthesis
	IncludeAntibiotic bool `toml:"include_antibiotic"` // draw antibiotic biosynthesis
	IncludeMicrobial  bool `toml:"include_microbial"`  // draw microbial metabolism in diverse environments
	WholeModules      bool `toml:"whole_modules"`      // highlight whole KEGG modules containing a selected element
	WholePathways     bool `toml:"whole_pathways"`     // highlight whole pathways containing a selected element
	KeepColors        bool `toml:"keep_colors"`        // keep default map colors for unselected elements
	QueryReactions    bool `toml:"query_reactions"`    // match reaction identifiers

	DefaultOpacity float64 `toml:"default_opacity"` // opacity of unselected elements
	DefaultWidth   float64 `toml:"default_width"`   // line width of unselected elements
	DefaultRadius  float64 `toml:"default_radius"`  // compound circle radius
	DefaultColor   string  `toml:"default_color"`   // color of unselected elements
	TaxFilter      string  `toml:"tax_filter"`      // NCBI taxonomy id restricting the map, empty for none
	ExportDPI      int     `toml:"export_dpi"`      // resolution for raster exports
}

// DefaultOptions returns the service defaults: an SVG of the metabolic
// map with unselected elements drawn in #666666.
func DefaultOptions() Options {
	return Options{
		ExportType:       ExportSVG,
		IncludeMetabolic: true,
		DefaultOpacity:   1,
		DefaultWidth:     3,
		DefaultRadius:    7,
		DefaultColor:     "#666666",
		ExportDPI:        1200,
	}
}

// Validate checks the enumerated options.
// An unknown export type fails with [errors.ErrCodeInvalidOption].
func (o Options) Validate() error {
	if !slices.Contains(ExportTypes, o.ExportType) {
		return errors.New(errors.ErrCodeInvalidOption,
			"export_type %q needs to be one of [%s]", o.ExportType, strings.Join(ExportTypes, ", "))
	}
	return nil
}

// ToParameters encodes selection and opts as the flat form body expected
// by the service. Booleans become "0" or "1"; numbers and strings are
// passed through unchanged.
func ToParameters(selection string, opts Options) (url.Values, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return url.Values{
		keySelection:         {selection},
		keyExportType:        {opts.ExportType},
		keyKeepColors:        {flag(opts.KeepColors)},
		keyIncludeMetabolic:  {flag(opts.IncludeMetabolic)},
		keyIncludeSecondary:  {flag(opts.IncludeSecondary)},
		keyIncludeAntibiotic: {flag(opts.IncludeAntibiotic)},
		keyIncludeMicrobial:  {flag(opts.IncludeMicrobial)},
		keyWholeModules:      {flag(opts.WholeModules)},
		keyDefaultOpacity:    {number(opts.DefaultOpacity)},
		keyWholePathways:     {flag(opts.WholePathways)},
		keyDefaultWidth:      {number(opts.DefaultWidth)},
		keyDefaultColor:      {opts.DefaultColor},
		keyDefaultRadius:     {number(opts.DefaultRadius)},
		keyQueryReactions:    {flag(opts.QueryReactions)},
		keyTaxFilter:         {opts.TaxFilter},
		keyExportDPI:         {strconv.Itoa(opts.ExportDPI)},
	}, nil
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
