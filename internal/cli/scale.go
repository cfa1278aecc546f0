package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ipath/pkg/svgscale"
)

// canvasFlags configures the scaled companion SVG.
type canvasFlags struct {
	width  string
	height string
	factor float64
}

func (f *canvasFlags) register(cmd *cobra.Command) {
	d := svgscale.DefaultOptions()
	cmd.Flags().StringVar(&f.width, "canvas-width", d.Width, "width of the scaled canvas")
	cmd.Flags().StringVar(&f.height, "canvas-height", d.Height, "height of the scaled canvas")
	cmd.Flags().Float64Var(&f.factor, "factor", d.Factor, "scale factor applied to the map")
}

func (f *canvasFlags) options() svgscale.Options {
	return svgscale.Options{Width: f.width, Height: f.height, Factor: f.factor}
}

// scaleCommand creates the scale command for an existing map file.
func (c *CLI) scaleCommand() *cobra.Command {
	var canvas canvasFlags

	cmd := &cobra.Command{
		Use:   "scale NAME",
		Short: "Write a scaled copy of NAME.svg for embedding in documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := svgscale.ScaleFile(args[0], canvas.options())
			if err != nil {
				return err
			}
			c.Logger.Debug("scaled map", "name", args[0], "factor", canvas.factor)
			printSuccess(cmd.OutOrStdout(), "Map scaled")
			printFile(cmd.OutOrStdout(), path)
			return nil
		},
	}

	canvas.register(cmd)
	return cmd
}
