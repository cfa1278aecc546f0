// Package pkg holds the libraries behind the ipath command.
//
// # Overview
//
// ipath turns a table of identifiers and numeric columns into a pathway map
// rendered by the iPath web service. The packages are layered:
//
//  1. [colormap] - named color scales (inferno, viridis, RdBu, ...)
//  2. [mapping] - value to color and value to range mapping
//  3. [selection] - table input and selection text assembly
//  4. [ipath] - request options and the HTTP client for the service
//  5. [svgscale] - rescaling rendered maps for embedding in documents
//
// Supporting packages: [errors] (coded errors), [observability] (event
// hooks) and [buildinfo] (version stamping).
//
// # Data Flow
//
//	CSV / TSV / JSON table
//	         ↓
//	selection.ReadFile
//	         ↓
//	selection.Build  ──→  mapping.Colors / mapping.ScaleToRange
//	         ↓
//	ipath.Client.GetMap  ──→  <name>.svg
//	         ↓
//	svgscale.ScaleFile   ──→  <name>_scaled.svg
//
// [colormap]: https://pkg.go.dev/github.com/matzehuels/ipath/pkg/colormap
// [mapping]: https://pkg.go.dev/github.com/matzehuels/ipath/pkg/mapping
// [selection]: https://pkg.go.dev/github.com/matzehuels/ipath/pkg/selection
// [ipath]: https://pkg.go.dev/github.com/matzehuels/ipath/pkg/ipath
// [svgscale]: https://pkg.go.dev/github.com/matzehuels/ipath/pkg/svgscale
// [errors]: https://pkg.go.dev/github.com/matzehuels/ipath/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/ipath/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/ipath/pkg/buildinfo
package pkg
