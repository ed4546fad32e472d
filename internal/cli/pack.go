package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/jts/compress"
	"github.com/arloliu/jts/document"
	"github.com/arloliu/jts/format"
	"github.com/arloliu/jts/payload"
)

// PackOptions holds flags for the pack command.
type PackOptions struct {
	Output      string
	Compression string
	BigEndian   bool
}

// NewPackCommand creates the pack command.
func NewPackCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PackOptions{}

	cmd := &cobra.Command{
		Use:   "pack <file>",
		Short: "Compress a JTS document into a binary payload",
		Long: `Encode a JTS document, compress it and prepend a header carrying the
uncompressed size and an xxHash64 checksum.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPack(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.Compression, "compression", "c", "zstd", "compression (none|zstd|s2|lz4)")
	cmd.Flags().BoolVar(&opts.BigEndian, "big-endian", false, "write header fields big-endian")

	return cmd
}

func runPack(rootOpts *RootOptions, opts *PackOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(rootOpts, cmd.ErrOrStderr())

	compression, err := format.ParseCompressionType(opts.Compression)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --compression", err)
	}

	in, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}

	doc, err := in.decode()
	if err != nil {
		return err
	}

	packOpts := []payload.Option{payload.WithCompression(compression)}
	if opts.BigEndian {
		packOpts = append(packOpts, payload.WithBigEndian())
	}

	data, err := payload.Pack(doc, packOpts...)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to pack document", err)
	}

	h, err := payload.ParseHeader(data)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to pack document", err)
	}
	stats := compress.NewCompressionStats(compression, int(h.Size), len(data)-payload.HeaderSize)
	logger.Info("packed document",
		"series", doc.Len(),
		"compression", strings.ToLower(compression.String()),
		"size", stats.OriginalSize,
		"compressed", stats.CompressedSize,
		"savings", fmt.Sprintf("%.1f%%", stats.SpaceSavings()),
	)

	return writeOutput(opts.Output, cmd.OutOrStdout(), data)
}

// encodeDocument encodes doc compactly or indented by indent spaces.
func encodeDocument(doc *document.Document, compact bool, indent int) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if compact || indent <= 0 {
		data, err = doc.Encode()
	} else {
		data, err = doc.EncodeIndent("", strings.Repeat(" ", indent))
	}
	if err != nil {
		return nil, WrapExitError(ExitFailure, "failed to encode document", err)
	}

	return append(data, '\n'), nil
}
