package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/jts/errs"
)

// S2Compressor compresses with S2, a Snappy-compatible format tuned for speed.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress compresses the input data using S2 compression.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}

// DecompressSize decompresses data into a buffer of exactly size bytes.
func (c S2Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkDeclaredSize(size); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, checkSize(nil, size)
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("%w: decompressed %d bytes, expected %d", errs.ErrSizeMismatch, n, size)
	}

	return s2.Decode(make([]byte, size), data)
}
