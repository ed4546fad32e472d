package payload

import (
	"fmt"
	"math"

	"github.com/arloliu/jts/compress"
	"github.com/arloliu/jts/document"
	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/internal/hash"
	"github.com/arloliu/jts/internal/pool"
)

// Pack encodes doc and frames the compressed JSON.
//
// Parameters:
//   - doc: Document to encode
//   - opts: Compression and byte order; Zstd little-endian by default
//
// Returns:
//   - []byte: Header followed by the compressed document
//   - error: Encoding errors such as ErrNoData, or compression errors
func Pack(doc *document.Document, opts ...Option) ([]byte, error) {
	data, err := doc.Encode()
	if err != nil {
		return nil, err
	}

	return PackBytes(data, opts...)
}

// PackBytes frames an already encoded JSON document. The JSON is not validated.
func PackBytes(data []byte, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: document of %d bytes exceeds payload limit", errs.ErrSizeMismatch, len(data))
	}

	codec, err := compress.CreateCodec(cfg.compression, "payload")
	if err != nil {
		return nil, err
	}

	body, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	h := Header{
		Version:  Version,
		Flag:     NewFlag(cfg.compression, cfg.bigEndian),
		Size:     uint32(len(data)),
		Checksum: hash.Checksum(data),
	}

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)

	bb.B = h.AppendTo(bb.B)
	_, _ = bb.Write(body)

	return bb.Clone(), nil
}

// Unpack verifies a payload and decodes the document it carries.
//
// Returns:
//   - *document.Document: Decoded document
//   - error: Header, size and checksum errors, or decode errors
func Unpack(data []byte) (*document.Document, error) {
	body, _, err := UnpackBytes(data)
	if err != nil {
		return nil, err
	}

	return document.Decode(body)
}

// UnpackBytes verifies a payload and returns the uncompressed JSON with the
// parsed header.
func UnpackBytes(data []byte) ([]byte, Header, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, Header{}, err
	}

	codec, err := compress.GetCodec(h.Flag.Compression())
	if err != nil {
		return nil, Header{}, err
	}

	body, err := compress.Decompress(codec, data[HeaderSize:], int(h.Size))
	if err != nil {
		return nil, Header{}, fmt.Errorf("failed to decompress payload: %w", err)
	}

	if len(body) != int(h.Size) {
		return nil, Header{}, fmt.Errorf("%w: body has %d bytes, header says %d", errs.ErrSizeMismatch, len(body), h.Size)
	}

	if sum := hash.Checksum(body); sum != h.Checksum {
		return nil, Header{}, fmt.Errorf("%w: got 0x%016x, header says 0x%016x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	return body, h, nil
}
