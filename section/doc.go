// Package section defines the wire structures of a JTS document and their
// JSON encoding.
//
// # Document Structure
//
//	{
//	  "docType": "jts",
//	  "version": "1.0",
//	  "header": {
//	    "startTime": "<ISO-8601>",
//	    "endTime": "<ISO-8601>",
//	    "recordCount": 2,
//	    "columns": { "0": {"id": "...", "name": "...", "dataType": "NUMBER", "units": "C"} }
//	  },
//	  "data": [
//	    { "ts": "<ISO-8601>", "f": { "0": {"v": 1.23, "q": 192, "a": "comment"} } }
//	  ]
//	}
//
// Column and field objects are keyed by the decimal positional index of the
// series in the document. In memory they are ordered slices (Columns, Fields)
// so that output order never depends on map iteration: columns are written
// "0".."N-1" and fields in ascending index order.
//
// Columns must form a dense index range starting at 0. Fields may be sparse.
package section
