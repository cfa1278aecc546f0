// Package colormap resolves colormap names to continuous palettes.
//
// A colormap maps a normalized value in [0, 1] to a color. Values outside
// that interval are clamped to the end colors. Names follow the plotting
// conventions users already know from scientific tooling:
//
//   - Sequential: inferno, viridis, magma, plasma, Greys
//   - Diverging: RdBu, PiYG, PuOr, coolwarm, bwr
//
// Any name may carry an "_r" suffix to reverse the colormap, so "RdBu_r"
// runs from blue (low) through white (center) to red (high).
//
// Each colormap is a gradient over evenly spaced stops sampled from the
// reference colormap; intermediate colors are interpolated by
// [palette.RGBGradient].
//
//	cm, err := colormap.Lookup("RdBu_r")
//	if err != nil {
//	    return err
//	}
//	r, g, b := cm.RGB(0.5) // center of the diverging map
package colormap
