package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/jts/errs"
)

// lz4CompressorPool pools lz4.Compressor instances; each holds a hash table
// that is expensive to allocate per call.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxExpansion is the largest ratio between a block's decompressed and
// compressed length; a match token encodes at most about 255 output bytes per input byte.
const lz4MaxExpansion = 255

// LZ4Compressor compresses with raw LZ4 blocks. Blocks do not record their
// decompressed size, so prefer DecompressSize when it is known.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data into a single LZ4 block.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block of unknown size.
//
// The output buffer starts at 4x the compressed size and doubles on
// ErrInvalidSourceShortBuffer, up to MaxDecompressedSize.
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: ErrInvalidSourceShortBuffer if the output exceeds the limit, or other decompression errors
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	for bufSize := len(data) * 4; bufSize <= MaxDecompressedSize; bufSize *= 2 {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressSize decompresses an LZ4 block whose original length is size.
// A size the block cannot expand to is rejected before allocating.
func (c LZ4Compressor) DecompressSize(data []byte, size int) ([]byte, error) {
	if err := checkDeclaredSize(size); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, checkSize(nil, size)
	}
	if size > lz4MaxExpansion*len(data)+16 {
		return nil, fmt.Errorf("%w: %d compressed bytes cannot expand to %d", errs.ErrSizeMismatch, len(data), size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}

	if err := checkSize(buf[:n], size); err != nil {
		return nil, err
	}

	return buf, nil
}
