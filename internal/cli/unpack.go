package cli

import (
	"github.com/spf13/cobra"
)

// UnpackOptions holds flags for the unpack command.
type UnpackOptions struct {
	Output string
	Indent int
	Raw    bool
}

// NewUnpackCommand creates the unpack command.
func NewUnpackCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &UnpackOptions{}

	cmd := &cobra.Command{
		Use:   "unpack <file>",
		Short: "Restore the JTS document from a binary payload",
		Long: `Verify a payload produced by "jts pack" and write the document it carries.

With --raw the stored JSON is written byte for byte; otherwise the document
is decoded and encoded again with --indent spaces.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnpack(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.Indent, "indent", 0, "indentation width (0 for compact)")
	cmd.Flags().BoolVar(&opts.Raw, "raw", false, "write the stored JSON without re-encoding")

	return cmd
}

func runUnpack(rootOpts *RootOptions, opts *UnpackOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(rootOpts, cmd.ErrOrStderr())

	in, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	if in.Header == nil {
		return NewExitError(ExitFailure, path+" is not a jts payload")
	}
	logger.Debug("verified payload",
		"compression", in.Header.Flag.Compression().String(),
		"size", in.Header.Size,
	)

	if opts.Raw {
		return writeOutput(opts.Output, cmd.OutOrStdout(), in.JSON)
	}

	doc, err := in.decode()
	if err != nil {
		return err
	}

	data, err := encodeDocument(doc, false, opts.Indent)
	if err != nil {
		return err
	}

	return writeOutput(opts.Output, cmd.OutOrStdout(), data)
}
