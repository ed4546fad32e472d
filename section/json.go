package section

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/internal/pool"
)

// appendJSON writes v to bb without HTML escaping and without the trailing
// newline json.Encoder adds.
func appendJSON(bb *pool.ByteBuffer, v any) error {
	enc := json.NewEncoder(bb)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	bb.B = bb.B[:len(bb.B)-1]

	return nil
}

// marshalIndexed writes a JSON object whose keys are the decimal indexes
// returned by key, in slice order.
func marshalIndexed(n int, key func(i int) int, value func(i int) any) ([]byte, error) {
	bb := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(bb)

	_ = bb.WriteByte('{')
	for i := range n {
		if i > 0 {
			_ = bb.WriteByte(',')
		}
		_ = bb.WriteByte('"')
		bb.B = strconv.AppendInt(bb.B, int64(key(i)), 10)
		_, _ = bb.WriteString(`":`)
		if err := appendJSON(bb, value(i)); err != nil {
			return nil, err
		}
	}
	_ = bb.WriteByte('}')

	return bb.Clone(), nil
}

// parseIndex converts an object key to a positional index. Only canonical
// non-negative decimal integers are accepted, so "01" and "+1" are rejected.
func parseIndex(key string) (int, error) {
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 || strconv.Itoa(idx) != key {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidIndex, key)
	}

	return idx, nil
}
