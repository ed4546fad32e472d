package document

import (
	"fmt"
	"io"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/section"
	"github.com/arloliu/jts/series"
)

// Decode parses a JTS JSON document.
//
// Returns:
//   - *Document: One series per header column, in index order, holding the
//     records of the data array
//   - error: ErrMalformedInput, ErrInvalidDocType, ErrInvalidDataType,
//     ErrInvalidTimestamp or ErrUnknownColumn
func Decode(data []byte) (*Document, error) {
	wire, err := section.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	return FromSection(wire)
}

// DecodeString parses a JTS JSON document held in a string.
func DecodeString(s string) (*Document, error) {
	return Decode([]byte(s))
}

// DecodeReader reads r to the end and parses the content as a JTS document.
func DecodeReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return Decode(data)
}

// UnmarshalJSON implements json.Unmarshaler. It replaces the content of d.
func (d *Document) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*d = *decoded

	return nil
}

// FromSection rebuilds a Document from its wire structure.
func FromSection(wire *section.Document) (*Document, error) {
	if wire.DocType != "" && wire.DocType != section.DocType {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidDocType, wire.DocType)
	}

	if wire.Header == nil {
		return nil, fmt.Errorf("%w: missing header", errs.ErrMalformedInput)
	}

	doc := &Document{version: wire.Version}

	for i, col := range wire.Header.Columns {
		opts := []series.Option{
			series.WithIdentifier(col.ID),
			series.WithDataType(col.DataType),
		}
		if col.Units != nil {
			opts = append(opts, series.WithUnits(*col.Units))
		}

		s, err := series.New(col.Name, opts...)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		doc.series = append(doc.series, s)
	}

	for n, entry := range wire.Data {
		ts, err := ParseTimestamp(entry.TS)
		if err != nil {
			return nil, fmt.Errorf("data entry %d: %w", n, err)
		}

		for _, f := range entry.F {
			if f.Index >= len(doc.series) {
				return nil, fmt.Errorf("%w: data entry %d references column %d of %d",
					errs.ErrUnknownColumn, n, f.Index, len(doc.series))
			}

			r := series.Record{
				Timestamp:  ts,
				Quality:    f.Field.Q,
				Annotation: f.Field.A,
			}
			if f.Field.V != nil {
				r.Value = *f.Field.V
			}
			doc.series[f.Index].Insert(r)
		}
	}

	return doc, nil
}
