package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/ipath/pkg/errors"
	"github.com/matzehuels/ipath/pkg/ipath"
	"github.com/matzehuels/ipath/pkg/svgscale"
)

// defaultMapName is the file stem used when --name is not given.
const defaultMapName = "map"

// mapCommand creates the map command for rendering a pathway map.
func (c *CLI) mapCommand() *cobra.Command {
	var (
		sel    selectionFlags
		req    requestFlags
		canvas canvasFlags
		name   string
		scale  bool
	)

	cmd := &cobra.Command{
		Use:   "map DATA",
		Short: "Render a pathway map from a data file",
		Long: `Render a pathway map from a CSV, TSV or JSON data file.

The first column of the file holds the identifiers (KEGG compounds, KOs,
EC numbers, ...). The columns named by --color, --width and --opacity are
mapped onto those attributes and the resulting selection is sent to the
iPath service. The response is saved as NAME.svg.`,
		Example: `  ipath map expression.tsv --color log2fc -n expression
  ipath map abundance.csv --width abundance --opacity confidence --scale`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.buildSelection(cmd, args[0], &sel)
			if err != nil {
				return err
			}
			opts, err := req.options(cmd, c.cfg.Defaults)
			if err != nil {
				return err
			}
			if scale && opts.ExportType != ipath.ExportSVG {
				return errors.New(errors.ErrCodeInvalidOption, "--scale needs export type svg, got %q", opts.ExportType)
			}

			prog := newProgress(c.Logger)
			spinner := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Rendering map...")
			spinner.Start()
			path, err := c.newClient().GetMap(cmd.Context(), text, name, opts)
			if err != nil {
				spinner.StopWithWarning()
				return err
			}
			spinner.StopWithSuccess(cmd.OutOrStdout(), "Map rendered")
			printFile(cmd.OutOrStdout(), path)
			prog.done("Rendered map")

			if scale {
				scaled, err := svgscale.ScaleFile(name, canvas.options())
				if err != nil {
					return err
				}
				printFile(cmd.OutOrStdout(), scaled)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", defaultMapName, "output file name without extension")
	cmd.Flags().BoolVar(&scale, "scale", false, "also write NAME_scaled.svg")
	sel.register(cmd)
	req.register(cmd)
	canvas.register(cmd)

	return cmd
}
