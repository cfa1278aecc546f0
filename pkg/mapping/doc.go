// Package mapping converts sequences of measured values into visual
// encodings understood by the iPath renderer.
//
// Two conversions are provided:
//
//   - [Colors] maps values to "RGB(r,g,b)" color codes. Non-negative data
//     uses a sequential colormap scaled to the data's own range; data with
//     any negative value uses a diverging colormap centered on zero, so
//     that zero always lands on the colormap's midpoint.
//   - [ScaleToRange] clips values into [vmin, vmax] and rescales them
//     linearly into an output range. It is used for line widths and
//     opacities.
//
// Both functions are pure: inputs are never modified, and repeated calls
// with the same arguments return identical results. They are safe for
// concurrent use.
package mapping
