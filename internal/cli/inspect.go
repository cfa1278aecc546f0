package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ipath/pkg/errors"
)

// inspectCommand creates the inspect command, which posts the selection
// to the interactive endpoint and dumps whatever comes back.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		sel    selectionFlags
		req    requestFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "inspect DATA",
		Short: "Submit a data file to the interactive iPath viewer",
		Long: `Submit a data file to the interactive iPath viewer and print the response.

Unlike map, the response status is not treated as an error: it is logged
and the body is written out as-is, which makes this useful for checking
how the service reacts to a selection.`,
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

			spinner := newSpinner(cmd.Context(), cmd.ErrOrStderr(), "Submitting selection...")
			spinner.Start()
			resp, err := c.newClient().Inspect(cmd.Context(), text, opts)
			if err != nil {
				spinner.StopWithWarning()
				return err
			}
			spinner.Stop()
			defer resp.Body.Close()

			c.Logger.Info("iPath responded", "status", resp.Status, "content-type", resp.Header.Get("Content-Type"))
			return writeOutput(cmd, output, func(w io.Writer) error {
				if _, err := io.Copy(w, resp.Body); err != nil {
					return errors.Wrap(errors.ErrCodeNetwork, err, "read response")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the response body to file instead of stdout")
	sel.register(cmd)
	req.register(cmd)
	return cmd
}
