package cli

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/jts/compress"
	"github.com/arloliu/jts/document"
	"github.com/arloliu/jts/endian"
	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/payload"
)

// InspectResult summarises a document.
type InspectResult struct {
	Version     string          `json:"version" yaml:"version"`
	StartTime   string          `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	EndTime     string          `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	RecordCount int             `json:"recordCount" yaml:"recordCount"`
	Series      []SeriesSummary `json:"series" yaml:"series"`
	// Duplicates lists identifiers shared by several series; lookups return the first.
	Duplicates  []string        `json:"duplicateIds,omitempty" yaml:"duplicateIds,omitempty"`
	Payload     *PayloadSummary `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// SeriesSummary describes one series of an inspected document.
type SeriesSummary struct {
	Index      int    `json:"index" yaml:"index"`
	Identifier string `json:"id" yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	DataType   string `json:"dataType" yaml:"dataType"`
	Units      string `json:"units,omitempty" yaml:"units,omitempty"`
	Records    int    `json:"records" yaml:"records"`
}

// PayloadSummary describes the framing of a packed document.
type PayloadSummary struct {
	Compression    string  `json:"compression" yaml:"compression"`
	ByteOrder      string  `json:"byteOrder" yaml:"byteOrder"`
	Size           int     `json:"size" yaml:"size"`
	CompressedSize int     `json:"compressedSize" yaml:"compressedSize"`
	Ratio          float64 `json:"ratio" yaml:"ratio"`
	Checksum       string  `json:"checksum" yaml:"checksum"`
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Summarise a JTS document or payload",
		Long: `Print the version, time range, entry count and series of a JTS document.

For payloads produced by "jts pack" the compression, byte order and sizes
are reported as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInspect(opts *RootOptions, path string, cmd *cobra.Command) error {
	logger := newLogger(opts, cmd.ErrOrStderr())

	in, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debug("read input", "path", path, "bytes", len(in.Raw), "payload", in.Header != nil)

	doc, err := in.decode()
	if err != nil {
		return err
	}

	result, err := inspectDocument(doc)
	if err != nil {
		return err
	}

	if in.Header != nil {
		result.Payload = summarisePayload(*in.Header, len(in.Raw))
	}

	return writeResult(cmd.OutOrStdout(), opts.Format, result)
}

func inspectDocument(doc *document.Document) (*InspectResult, error) {
	result := &InspectResult{
		Version: doc.Version(),
		Series:  make([]SeriesSummary, 0, doc.Len()),
	}

	for i, s := range doc.Series() {
		units, _ := s.Units()
		result.Series = append(result.Series, SeriesSummary{
			Index:      i,
			Identifier: s.Identifier(),
			Name:       s.Name(),
			DataType:   s.DataType().String(),
			Units:      units,
			Records:    s.Len(),
		})
	}

	result.Duplicates = doc.DuplicateIdentifiers()

	wire, err := doc.Build()
	switch {
	case errors.Is(err, errs.ErrNoData):
		return result, nil
	case err != nil:
		return nil, WrapExitError(ExitFailure, "invalid document", err)
	}

	result.StartTime = wire.Header.StartTime
	result.EndTime = wire.Header.EndTime
	result.RecordCount = wire.Header.RecordCount

	return result, nil
}

func summarisePayload(h payload.Header, total int) *PayloadSummary {
	compressed := total - payload.HeaderSize
	stats := compress.NewCompressionStats(h.Flag.Compression(), int(h.Size), compressed)

	return &PayloadSummary{
		Compression:    h.Flag.Compression().String(),
		ByteOrder:      endian.Name(h.Flag.Engine()),
		Size:           int(h.Size),
		CompressedSize: compressed,
		Ratio:          stats.CompressionRatio(),
		Checksum:       fmt.Sprintf("%016x", h.Checksum),
	}
}

// WriteText renders the result as aligned text.
func (r *InspectResult) WriteText(w io.Writer) error {
	fmt.Fprintf(w, "Version:  %s\n", r.Version)
	if r.StartTime != "" {
		fmt.Fprintf(w, "Range:    %s .. %s\n", r.StartTime, r.EndTime)
	}
	fmt.Fprintf(w, "Entries:  %d\n", r.RecordCount)

	if p := r.Payload; p != nil {
		fmt.Fprintf(w, "Payload:  %s, %s, %d -> %d bytes (%.2f), checksum %s\n",
			p.Compression, p.ByteOrder, p.Size, p.CompressedSize, p.Ratio, p.Checksum)
	}

	fmt.Fprintf(w, "Series:   %d\n", len(r.Series))
	if len(r.Duplicates) > 0 {
		fmt.Fprintf(w, "Duplicate identifiers: %v\n", r.Duplicates)
	}
	if len(r.Series) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "  #\tID\tNAME\tTYPE\tUNITS\tRECORDS")
	for _, s := range r.Series {
		fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\t%s\t%d\n", s.Index, s.Identifier, s.Name, s.DataType, s.Units, s.Records)
	}

	return tw.Flush()
}
