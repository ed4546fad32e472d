// Package errs defines the sentinel errors returned by the jts packages.
//
// Callers match them with errors.Is; the packages wrap them with
// fmt.Errorf("%w: ...") to add context such as a series identifier or an
// entry position.
package errs

import "errors"

// Construction and insertion errors.
var (
	// ErrInvalidType is returned when a record or series argument is neither the
	// expected element nor an ordered sequence of it.
	ErrInvalidType = errors.New("invalid argument type")
	// ErrInvalidDataType is returned for a data type outside NUMBER, TEXT, TIME and COORDINATES.
	ErrInvalidDataType = errors.New("invalid data type")
	// ErrInvalidValue is returned when a record value cannot be cast to the series data type.
	ErrInvalidValue = errors.New("invalid record value")
	// ErrInvalidCompression is returned for an unknown compression type.
	ErrInvalidCompression = errors.New("invalid compression type")
)

// Encoding errors.
var (
	// ErrNoData is returned by encode when no record survives filtering, so no
	// header can be derived.
	ErrNoData = errors.New("cannot build document without data")
)

// Decoding errors.
var (
	ErrMalformedInput   = errors.New("malformed jts input")
	ErrInvalidDocType   = errors.New("invalid document type")
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidIndex     = errors.New("invalid column index")
	ErrUnknownColumn    = errors.New("data field references unknown column")
)

// Payload framing errors.
var (
	ErrInvalidHeaderSize  = errors.New("invalid payload header size")
	ErrInvalidMagicNumber = errors.New("invalid payload magic number")
	ErrInvalidVersion     = errors.New("unsupported payload version")
	ErrInvalidFlag        = errors.New("invalid payload flag")
	ErrSizeMismatch       = errors.New("payload size mismatch")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
)
