package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/ipath/pkg/errors"
)

// selectionCommand creates the selection command, which prints the text
// that map and inspect would send without contacting the service.
func (c *CLI) selectionCommand() *cobra.Command {
	var (
		sel    selectionFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "selection DATA",
		Short: "Print the iPath selection for a data file",
		Long: `Print the iPath selection for a data file.

The output can be pasted into the iPath web interface.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := c.buildSelection(cmd, args[0], &sel)
			if err != nil {
				return err
			}
			return writeOutput(cmd, output, func(w io.Writer) error {
				_, err := io.WriteString(w, text)
				return err
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	sel.register(cmd)
	return cmd
}

// writeOutput calls write with the command's stdout, or with the named
// file when path is set.
func writeOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
	return nil
}
