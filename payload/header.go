package payload

import (
	"fmt"

	"github.com/arloliu/jts/endian"
	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/format"
)

const (
	// HeaderSize is the fixed size of the payload header in bytes.
	HeaderSize = 16
	// Version is the payload format version written by Pack.
	Version = 1

	magic0 = 'J'
	magic1 = 'T'

	flagBigEndian       = 0x01
	flagCompressionMask = 0xF0
	flagReservedMask    = 0x0E
)

// Flag packs the byte order and compression type of a payload.
type Flag uint8

// NewFlag returns the flag for the given compression and byte order.
func NewFlag(compression format.CompressionType, bigEndian bool) Flag {
	f := Flag(uint8(compression) << 4)
	if bigEndian {
		f |= flagBigEndian
	}

	return f
}

// IsBigEndian reports whether size and checksum are stored big-endian.
func (f Flag) IsBigEndian() bool {
	return f&flagBigEndian != 0
}

// Compression returns the compression type of the body.
func (f Flag) Compression() format.CompressionType {
	return format.CompressionType((f & flagCompressionMask) >> 4)
}

// Engine returns the byte order engine named by the flag.
func (f Flag) Engine() endian.EndianEngine {
	return endian.FromBigEndianFlag(f.IsBigEndian())
}

// Validate checks that reserved bits are clear and the compression type is known.
func (f Flag) Validate() error {
	if f&flagReservedMask != 0 {
		return fmt.Errorf("%w: reserved flag bits set: 0x%02x", errs.ErrInvalidFlag, uint8(f))
	}

	if !f.Compression().IsValid() {
		return fmt.Errorf("%w: 0x%x", errs.ErrInvalidCompression, uint8(f.Compression()))
	}

	return nil
}

// Header is the fixed-size header at the start of a payload.
type Header struct {
	// Version is the payload format version.
	Version uint8 // byte offset 2
	// Flag holds the byte order and compression type.
	Flag Flag // byte offset 3
	// Size is the length of the uncompressed JSON document.
	Size uint32 // byte offset 4-7
	// Checksum is the xxHash64 of the uncompressed JSON document.
	Checksum uint64 // byte offset 8-15
}

// AppendTo appends the serialized header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	engine := h.Flag.Engine()

	dst = append(dst, magic0, magic1, h.Version, uint8(h.Flag))
	dst = engine.AppendUint32(dst, h.Size)
	dst = engine.AppendUint64(dst, h.Checksum)

	return dst
}

// Bytes serializes the header into a new HeaderSize byte slice.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// ParseHeader parses the header at the start of data.
//
// Parameters:
//   - data: Payload bytes; only the first HeaderSize bytes are read
//
// Returns:
//   - Header: Parsed header
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrInvalidVersion or
//     ErrInvalidCompression
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes, need %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	if data[0] != magic0 || data[1] != magic1 {
		return Header{}, fmt.Errorf("%w: 0x%02x%02x", errs.ErrInvalidMagicNumber, data[0], data[1])
	}

	h := Header{Version: data[2], Flag: Flag(data[3])}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", errs.ErrInvalidVersion, h.Version)
	}

	if err := h.Flag.Validate(); err != nil {
		return Header{}, err
	}

	engine := h.Flag.Engine()
	h.Size = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return h, nil
}
