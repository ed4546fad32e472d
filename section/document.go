package section

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/internal/pool"
)

// DocType is the fixed value of the docType member.
const DocType = "jts"

// Document is the complete wire structure.
type Document struct {
	DocType string  `json:"docType"`
	Version string  `json:"version"`
	Header  *Header `json:"header"`
	Data    []Entry `json:"data"`
}

// Marshal encodes d as compact JSON without HTML escaping.
func Marshal(d *Document) ([]byte, error) {
	return MarshalIndent(d, "", "")
}

// MarshalIndent encodes d like Marshal, indenting when prefix or indent is non-empty.
func MarshalIndent(d *Document, prefix, indent string) ([]byte, error) {
	bb := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(bb)

	enc := json.NewEncoder(bb)
	enc.SetEscapeHTML(false)
	if prefix != "" || indent != "" {
		enc.SetIndent(prefix, indent)
	}
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	bb.B = bytes.TrimSuffix(bb.B, []byte{'\n'})

	return bb.Clone(), nil
}

// Unmarshal parses data into a Document. It only checks JSON syntax and the
// shape of the index-keyed objects; semantic checks belong to the caller.
func Unmarshal(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, wrapMalformed(err)
	}

	return &d, nil
}

func wrapMalformed(err error) error {
	if errors.Is(err, errs.ErrMalformedInput) {
		return err
	}

	return fmt.Errorf("%w: %w", errs.ErrMalformedInput, err)
}
