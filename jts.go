// Package jts reads and writes JSON Time Series (JTS) documents.
//
// A JTS document is a JSON object that stores several time series in a
// row-oriented layout: a header enumerates the series as columns, and every
// data entry holds the fields of all series recorded within the same second.
//
//	{
//	  "docType": "jts",
//	  "version": "1.0",
//	  "header": {
//	    "startTime": "2024-05-01T10:00:00.123456Z",
//	    "endTime": "2024-05-01T10:01:00.123456Z",
//	    "recordCount": 2,
//	    "columns": {"0": {"id": "temp", "name": "Temperature", "dataType": "NUMBER", "units": "C"}}
//	  },
//	  "data": [
//	    {"ts": "2024-05-01T10:00:00.123456Z", "f": {"0": {"v": 21.5, "q": 192}}},
//	    {"ts": "2024-05-01T10:01:00.123456Z", "f": {"0": {"v": 21.7, "a": "recalibrated"}}}
//	  ]
//	}
//
// # Basic Usage
//
// Building and encoding a document:
//
//	temp, _ := jts.NewSeries("Temperature",
//	    series.WithIdentifier("temp"),
//	    series.WithUnits("C"),
//	)
//	temp.Insert(jts.NewRecord(time.Now(), series.Number(21.5), series.WithQuality(192)))
//
//	doc, _ := jts.NewDocument(document.WithSeries(temp))
//	data, err := jts.Encode(doc)
//
// Decoding a document:
//
//	doc, err := jts.Decode(data)
//	temp, ok := doc.GetSeries("temp")
//
// Packing a document into a compressed, checksummed payload:
//
//	data, err := jts.Pack(doc, payload.WithCompression(format.CompressionZstd))
//	doc, err = jts.Unpack(data)
//
// # Package Structure
//
// This package provides top-level wrappers around the series, document and
// payload packages for the most common use cases. Use those packages directly
// for full control.
package jts

import (
	"time"

	"github.com/arloliu/jts/document"
	"github.com/arloliu/jts/payload"
	"github.com/arloliu/jts/series"
)

// NewRecord creates a record observed at ts.
//
// Example:
//
//	r := jts.NewRecord(time.Now(), series.Number(21.5),
//	    series.WithQuality(192),
//	    series.WithAnnotation("manual reading"),
//	)
func NewRecord(ts time.Time, v series.Value, opts ...series.RecordOption) series.Record {
	return series.NewRecord(ts, v, opts...)
}

// NewSeries creates a series named name.
//
// Parameters:
//   - name: Human readable series name
//   - opts: Optional configuration (see series.Option)
//
// Returns:
//   - *series.Series: The created series, with a fresh UUID identifier unless
//     series.WithIdentifier is given
//   - error: An error if an option is invalid
//
// Available options:
//   - series.WithIdentifier(id)
//   - series.WithUnits(units)
//   - series.WithDataType(format.TypeNumber|TypeText|TypeTime|TypeCoordinates)
//   - series.WithRecords(records...) / series.WithRecordsAny(v)
func NewSeries(name string, opts ...series.Option) (*series.Series, error) {
	return series.New(name, opts...)
}

// NewDocument creates a document with version "1.0" unless
// document.WithVersion is given.
//
// Available options:
//   - document.WithVersion(version)
//   - document.WithSeries(series...) / document.WithSeriesAny(v)
func NewDocument(opts ...document.Option) (*document.Document, error) {
	return document.New(opts...)
}

// Encode returns the compact JTS JSON encoding of doc.
//
// Returns:
//   - []byte: The encoded document
//   - error: errs.ErrNoData if no series holds a non-empty record, or
//     errs.ErrInvalidValue if a value cannot be cast to its series data type
func Encode(doc *document.Document) ([]byte, error) {
	return doc.Encode()
}

// Decode parses JTS JSON into a document. See document.Decode for the errors.
func Decode(data []byte) (*document.Document, error) {
	return document.Decode(data)
}

// Pack encodes doc and wraps it in a compressed, checksummed payload.
//
// Available options:
//   - payload.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - payload.WithLittleEndian() / payload.WithBigEndian()
func Pack(doc *document.Document, opts ...payload.Option) ([]byte, error) {
	return payload.Pack(doc, opts...)
}

// Unpack verifies a payload produced by Pack and decodes its document.
func Unpack(data []byte) (*document.Document, error) {
	return payload.Unpack(data)
}
