package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/jts/document"
	"github.com/arloliu/jts/payload"
)

// input is a document read from a file or stdin.
type input struct {
	// Raw holds the bytes as read.
	Raw []byte
	// JSON holds the document JSON, uncompressed when Raw is a payload.
	JSON []byte
	// Header is set when Raw is a payload.
	Header *payload.Header
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// isPayload reports whether data starts with the payload magic number.
func isPayload(data []byte) bool {
	return len(data) >= 2 && data[0] == 'J' && data[1] == 'T'
}

// readInput reads path ("-" for stdin) and unwraps a payload if present.
func readInput(path string, stdin io.Reader) (*input, error) {
	raw, err := readSource(path, stdin)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, fmt.Sprintf("failed to read %s", path), err)
	}

	in := &input{Raw: raw, JSON: bytes.TrimSpace(raw)}
	if !isPayload(raw) {
		return in, nil
	}

	body, h, err := payload.UnpackBytes(raw)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "invalid payload", err)
	}
	in.JSON = body
	in.Header = &h

	return in, nil
}

// decode parses the document carried by in.
func (in *input) decode() (*document.Document, error) {
	doc, err := document.Decode(in.JSON)
	if err != nil {
		return nil, WrapExitError(ExitFailure, "invalid document", err)
	}

	return doc, nil
}

// writeOutput writes data to path, or to stdout when path is empty or "-".
func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "" || path == "-" {
		_, err := stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to write %s", path), err)
	}

	return nil
}
