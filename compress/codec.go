package compress

import (
	"fmt"

	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/format"
)

// MaxDecompressedSize bounds the output of every codec. Larger declared or
// actual sizes are treated as corrupt input.
const MaxDecompressedSize = 128 * 1024 * 1024

// Compressor compresses an encoded document.
type Compressor interface {
	// Compress returns the compressed form of data. The returned slice is
	// owned by the caller; data is not modified.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores data produced by the matching Compressor.
type Decompressor interface {
	// Decompress returns the original bytes, or an error if data is corrupted
	// or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// SizedDecompressor is implemented by codecs that can use a known
// decompressed size to allocate their output exactly once.
type SizedDecompressor interface {
	// DecompressSize decompresses data whose original length is size. It
	// fails before allocating if size exceeds MaxDecompressedSize or what
	// the codec can produce from data, and after decoding if the length differs.
	DecompressSize(data []byte, size int) ([]byte, error)
}

// CompressionStats describes the result of compressing one document.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used.
	Algorithm format.CompressionType
	// OriginalSize is the size of the input before compression.
	OriginalSize int64
	// CompressedSize is the size of the output after compression.
	CompressedSize int64
}

// NewCompressionStats returns the stats for compressing original bytes into
// compressed bytes with algorithm.
func NewCompressionStats(algorithm format.CompressionType, original, compressed int) CompressionStats {
	return CompressionStats{
		Algorithm:      algorithm,
		OriginalSize:   int64(original),
		CompressedSize: int64(compressed),
	}
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values below 1.0 mean the output is smaller than the input.
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage of the original size.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: ErrInvalidCompression for an unknown type
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid %s compression: %s", errs.ErrInvalidCompression, target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type: %s", errs.ErrInvalidCompression, compressionType)
}

// Decompress restores data with codec, passing size to codecs that implement
// SizedDecompressor. A non-positive size means unknown.
func Decompress(codec Decompressor, data []byte, size int) ([]byte, error) {
	if sd, ok := codec.(SizedDecompressor); ok && size > 0 {
		return sd.DecompressSize(data, size)
	}

	return codec.Decompress(data)
}

// checkDeclaredSize rejects a declared size above MaxDecompressedSize.
func checkDeclaredSize(size int) error {
	if size < 0 || size > MaxDecompressedSize {
		return fmt.Errorf("%w: declared size %d exceeds limit %d", errs.ErrSizeMismatch, size, MaxDecompressedSize)
	}

	return nil
}

func checkSize(out []byte, size int) error {
	if len(out) != size {
		return fmt.Errorf("%w: decompressed %d bytes, expected %d", errs.ErrSizeMismatch, len(out), size)
	}

	return nil
}
