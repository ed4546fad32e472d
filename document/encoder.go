package document

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/format"
	"github.com/arloliu/jts/section"
	"github.com/arloliu/jts/series"
)

// Build assembles the wire structure of d.
//
// Returns:
//   - *section.Document: Header and data sorted by epoch second
//   - error: ErrNoData if no record survives filtering, ErrInvalidValue if a
//     value cannot be cast to its series data type
func (d *Document) Build() (*section.Document, error) {
	data, err := d.buildData()
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, errs.ErrNoData
	}

	return &section.Document{
		DocType: section.DocType,
		Version: d.version,
		Header:  section.NewHeader(data, d.buildColumns()),
		Data:    data,
	}, nil
}

// Encode returns the compact JSON encoding of d.
func (d *Document) Encode() ([]byte, error) {
	return d.EncodeIndent("", "")
}

// EncodeString returns the compact JSON encoding of d as a string.
func (d *Document) EncodeString() (string, error) {
	data, err := d.Encode()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// EncodeIndent returns the JSON encoding of d, indented as json.MarshalIndent does.
func (d *Document) EncodeIndent(prefix, indent string) ([]byte, error) {
	wire, err := d.Build()
	if err != nil {
		return nil, err
	}

	return section.MarshalIndent(wire, prefix, indent)
}

// MarshalJSON implements json.Marshaler.
//
// json.Marshal compacts the result with HTML escaping, so '<', '>' and '&'
// in names, units or annotations come out as \u003c, \u003e and \u0026.
// The decoded document is the same; use Encode for the unescaped bytes.
func (d *Document) MarshalJSON() ([]byte, error) {
	return d.Encode()
}

func (d *Document) buildColumns() section.Columns {
	columns := make(section.Columns, len(d.series))
	for i, s := range d.series {
		columns[i] = section.Column{
			ID:       s.Identifier(),
			Name:     s.Name(),
			DataType: s.DataType(),
		}
		if units, ok := s.Units(); ok && units != "" {
			columns[i].Units = &units
		}
	}

	return columns
}

// buildData groups records by epoch second and returns the entries sorted by
// that key. The first record seen for a second supplies the entry timestamp.
func (d *Document) buildData() ([]section.Entry, error) {
	entries := make(map[int64]*section.Entry)

	for col, s := range d.series {
		for pos, r := range s.All() {
			if r.IsEmpty() {
				continue
			}

			field, err := buildField(r, s.DataType())
			if err != nil {
				return nil, fmt.Errorf("series %q record %d: %w", s.Identifier(), pos, err)
			}

			key := r.Timestamp.Unix()
			entry, ok := entries[key]
			if !ok {
				entry = &section.Entry{TS: FormatTimestamp(r.Timestamp), Key: key}
				entries[key] = entry
			}
			entry.F.Set(col, field)
		}
	}

	data := make([]section.Entry, 0, len(entries))
	for _, entry := range entries {
		data = append(data, *entry)
	}
	slices.SortFunc(data, func(a, b section.Entry) int {
		return cmp.Compare(a.Key, b.Key)
	})

	return data, nil
}

// buildField converts a record to its wire field. Only truthy members are
// written; TIME and COORDINATES values have no column encoding and are omitted.
func buildField(r series.Record, dt format.DataType) (section.Field, error) {
	var field section.Field

	if r.Value.Truthy() {
		switch dt { //nolint: exhaustive
		case format.TypeNumber:
			n, err := r.Value.AsNumber()
			if err != nil {
				return section.Field{}, err
			}
			v := series.Number(n)
			field.V = &v
		case format.TypeText:
			v := series.Text(r.Value.AsText())
			field.V = &v
		}
	}

	if q, ok := r.QualityValue(); ok && q != 0 {
		field.Q = &q
	}

	if a, ok := r.AnnotationValue(); ok && a != "" {
		field.A = &a
	}

	return field, nil
}
