// Package svgscale places a rendered iPath map on a fixed-size canvas.
//
// iPath returns maps with very large user-space dimensions. Scale wraps the
// map's content in a group scaled by a constant factor and declares a
// physical page size, producing a document that drops into papers and
// slides at a sensible size. The defaults give a 26cm x 16cm page with the
// map scaled to 0.265.
package svgscale

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"

	"github.com/matzehuels/ipath/pkg/errors"
)

const svgNS = "http://www.w3.org/2000/svg"

// ScaledSuffix is appended to the map name for the scaled companion file.
const ScaledSuffix = "_scaled"

// Options controls the output canvas.
type Options struct {
	Width  string  // canvas width with unit, e.g. "26cm"
	Height string  // canvas height with unit, e.g. "16cm"
	Factor float64 // scale applied to the map content
}

// DefaultOptions returns the 26cm x 16cm canvas at scale 0.265.
func DefaultOptions() Options {
	return Options{Width: "26cm", Height: "16cm", Factor: 0.265}
}

// Scale reads an SVG document from r and writes the scaled document to w.
// Input that is not an SVG document fails with [errors.ErrCodeInvalidInput].
func Scale(r io.Reader, w io.Writer, opts Options) error {
	if opts.Factor <= 0 {
		return errors.New(errors.ErrCodeInvalidOption, "scale factor must be positive, got %g", opts.Factor)
	}

	src := etree.NewDocument()
	if _, err := src.ReadFrom(r); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse svg")
	}
	root := src.Root()
	if root == nil || root.Tag != "svg" {
		return errors.New(errors.ErrCodeInvalidInput, "document root is not <svg>")
	}

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	svg := out.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNS)
	for _, a := range root.Attr {
		if a.Space == "xmlns" {
			svg.CreateAttr("xmlns:"+a.Key, a.Value)
		}
	}
	svg.CreateAttr("version", "1.1")
	svg.CreateAttr("width", opts.Width)
	svg.CreateAttr("height", opts.Height)

	g := svg.CreateElement("g")
	g.CreateAttr("transform", "scale("+strconv.FormatFloat(opts.Factor, 'g', -1, 64)+")")
	for _, child := range root.ChildElements() {
		g.AddChild(child.Copy())
	}

	out.Indent(2)
	if _, err := out.WriteTo(w); err != nil {
		return fmt.Errorf("write scaled svg: %w", err)
	}
	return nil
}

// ScaleFile reads <mapName>.svg and writes <mapName>_scaled.svg,
// returning the path written.
func ScaleFile(mapName string, opts Options) (string, error) {
	if err := errors.ValidateMapName(mapName); err != nil {
		return "", err
	}

	in, err := os.ReadFile(mapName + ".svg")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read map %s.svg", mapName)
	}

	var buf bytes.Buffer
	if err := Scale(bytes.NewReader(in), &buf, opts); err != nil {
		return "", err
	}

	path := mapName + ScaledSuffix + ".svg"
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return path, nil
}
