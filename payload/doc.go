// Package payload frames encoded JTS documents for storage and transport.
//
// A payload is a 16-byte header followed by the compressed JSON document:
//
//	offset  size  field
//	0       2     magic "JT" (0x4A 0x54)
//	2       1     format version (1)
//	3       1     flag: bit 0 big-endian, bits 4-7 compression type
//	4       4     uncompressed JSON size
//	8       8     xxHash64 of the uncompressed JSON
//	16      -     compressed body
//
// The magic, version and flag bytes are read before the byte order is known;
// size and checksum use the byte order named by the flag.
//
// Basic usage:
//
//	data, err := payload.Pack(doc, payload.WithCompression(format.CompressionZstd))
//	...
//	doc, err := payload.Unpack(data)
package payload
