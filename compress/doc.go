// Package compress provides the codecs used to compress encoded JTS documents
// for transport and storage.
//
// A JTS document is plain JSON and compresses well: column metadata is written
// once, but the "ts", "f", "v", "q" and "a" members repeat for every entry.
// The payload package frames the compressed bytes; this package only converts
// between raw and compressed bytes.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): bytes are passed through unchanged
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Zstd uses the pure Go klauspost/compress implementation. Building with the
// cgozstd tag switches to valyala/gozstd, which links the reference C library.
// Both produce standard zstd frames, so either build can read the other's output.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(jsonBytes)
//
// When the decompressed size is known in advance, as it is for payloads, use
// DecompressSize so codecs that cannot learn the size from their own framing
// allocate the output once.
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders, and
// are safe for concurrent use.
package compress
