// Package document implements JTS documents: an ordered set of series and the
// algorithms that encode them to, and decode them from, the JTS JSON format.
//
// # Encoding
//
// Encoding walks every record of every series once. Records whose value,
// quality and annotation are all absent are skipped. The remaining records
// are grouped by the epoch second of their timestamp: records from any series
// that fall within the same second share one data entry, whose "ts" is the
// full-precision timestamp of the first record seen for that second. Entries
// are sorted by epoch second and the header is derived from the sorted data.
//
// A value is written to "v" only when it is truthy: the number 0 and the empty
// string are treated as absent, as are quality 0 and an empty annotation.
//
//	doc, _ := document.New(document.WithSeries(temperature, humidity))
//	data, err := doc.Encode()
//
// # Decoding
//
// Decoding rebuilds one empty series per header column, in index order, and
// inserts each data field into the series at its index:
//
//	doc, err := document.Decode(data)
//	s, ok := doc.GetSeries("temp-1")
//
// A Document is not safe for concurrent use.
package document
