package section

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/series"
)

// Field is the per-series part of a data entry. Nil members are absent and
// omitted from the output.
type Field struct {
	V *series.Value `json:"v,omitempty"`
	Q *int          `json:"q,omitempty"`
	A *string       `json:"a,omitempty"`
}

// IndexedField pairs a field with the positional index of its series.
type IndexedField struct {
	Index int
	Field Field
}

// Fields is a sparse set of fields kept in ascending index order.
type Fields []IndexedField

// Set stores field under index, replacing an existing field with the same index.
func (f *Fields) Set(index int, field Field) {
	pos, found := slices.BinarySearchFunc(*f, index, func(e IndexedField, target int) int {
		return e.Index - target
	})
	if found {
		(*f)[pos].Field = field
		return
	}

	*f = slices.Insert(*f, pos, IndexedField{Index: index, Field: field})
}

// Get returns the field stored under index.
func (f Fields) Get(index int) (Field, bool) {
	pos, found := slices.BinarySearchFunc(f, index, func(e IndexedField, target int) int {
		return e.Index - target
	})
	if !found {
		return Field{}, false
	}

	return f[pos].Field, true
}

// MarshalJSON writes the fields as an object keyed by index.
func (f Fields) MarshalJSON() ([]byte, error) {
	return marshalIndexed(len(f),
		func(i int) int { return f[i].Index },
		func(i int) any { return f[i].Field },
	)
}

// UnmarshalJSON reads an index-keyed field object.
func (f *Fields) UnmarshalJSON(data []byte) error {
	var raw map[string]Field
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: fields: %w", errs.ErrMalformedInput, err)
	}

	fields := make(Fields, 0, len(raw))
	for key, field := range raw {
		idx, err := parseIndex(key)
		if err != nil {
			return fmt.Errorf("%w: field %w", errs.ErrMalformedInput, err)
		}
		fields = append(fields, IndexedField{Index: idx, Field: field})
	}

	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Index < fields[j].Index
	})
	*f = fields

	return nil
}
