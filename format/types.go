package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/jts/errs"
)

type (
	DataType        uint8
	CompressionType uint8
)

const (
	TypeNumber      DataType = 0x1 // TypeNumber represents float64 values.
	TypeText        DataType = 0x2 // TypeText represents string values.
	TypeTime        DataType = 0x3 // TypeTime represents time values, column metadata only.
	TypeCoordinates DataType = 0x4 // TypeCoordinates represents coordinate pairs, column metadata only.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (d DataType) String() string {
	switch d {
	case TypeNumber:
		return "NUMBER"
	case TypeText:
		return "TEXT"
	case TypeTime:
		return "TIME"
	case TypeCoordinates:
		return "COORDINATES"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether d is one of the four declared data types.
func (d DataType) IsValid() bool {
	return d >= TypeNumber && d <= TypeCoordinates
}

// MarshalText renders the data type by its wire name.
func (d DataType) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: 0x%x", errs.ErrInvalidDataType, uint8(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText parses a wire name such as "NUMBER".
func (d *DataType) UnmarshalText(text []byte) error {
	parsed, err := ParseDataType(string(text))
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}

// ParseDataType converts a wire name to a DataType. Matching is exact, the
// wire format only uses upper-case names.
func ParseDataType(s string) (DataType, error) {
	switch s {
	case "NUMBER":
		return TypeNumber, nil
	case "TEXT":
		return TypeText, nil
	case "TIME":
		return TypeTime, nil
	case "COORDINATES":
		return TypeCoordinates, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidDataType, s)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompressionType converts a case-insensitive name ("none", "zstd", "s2", "lz4")
// to a CompressionType.
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, s)
	}
}
