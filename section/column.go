package section

import (
	"encoding/json"
	"fmt"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/format"
)

// Column describes one series of a document.
type Column struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	DataType format.DataType `json:"dataType"`
	Units    *string         `json:"units,omitempty"`
}

// Columns holds column metadata in positional order; element i is written
// under key "i".
type Columns []Column

// MarshalJSON writes the columns as an object keyed "0".."N-1".
func (c Columns) MarshalJSON() ([]byte, error) {
	return marshalIndexed(len(c),
		func(i int) int { return i },
		func(i int) any { return c[i] },
	)
}

// UnmarshalJSON reads an index-keyed column object. The keys must be exactly
// the dense range "0".."N-1", in any order.
func (c *Columns) UnmarshalJSON(data []byte) error {
	var raw map[string]Column
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: columns: %w", errs.ErrMalformedInput, err)
	}

	cols := make(Columns, len(raw))
	seen := make([]bool, len(raw))
	for key, col := range raw {
		idx, err := parseIndex(key)
		if err != nil {
			return fmt.Errorf("%w: column %w", errs.ErrMalformedInput, err)
		}
		if idx >= len(raw) {
			return fmt.Errorf("%w: column index %d outside dense range 0..%d", errs.ErrMalformedInput, idx, len(raw)-1)
		}
		cols[idx] = col
		seen[idx] = true
	}

	for idx, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: missing column %d", errs.ErrMalformedInput, idx)
		}
	}

	*c = cols

	return nil
}
