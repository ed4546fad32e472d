package compress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/jts/errs"
)

// ZstdCompressor compresses with Zstandard. It gives the best ratio of the
// built-in codecs and suits archival and network transfer of documents.
//
// The implementation is selected at build time: pure Go by default, cgo with
// the cgozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// DecompressSize decompresses data and checks that the result is size bytes
// long. A frame whose header records a different content size is rejected
// before decoding.
func (c ZstdCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkDeclaredSize(size); err != nil {
		return nil, err
	}

	var fh zstd.Header
	if err := fh.Decode(data); err == nil && fh.HasFCS && fh.FrameContentSize != uint64(size) {
		return nil, fmt.Errorf("%w: zstd frame holds %d bytes, expected %d", errs.ErrSizeMismatch, fh.FrameContentSize, size)
	}

	out, err := c.Decompress(data)
	if err != nil {
		return nil, err
	}

	if err := checkSize(out, size); err != nil {
		return nil, err
	}

	return out, nil
}
