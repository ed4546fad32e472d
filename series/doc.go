// Package series provides the in-memory data holders of a JTS document: Value,
// Record and Series.
//
// A Series is a named, typed, ordered collection of Records. Records keep
// their insertion order; nothing requires them to be time-sorted. A Series
// is not safe for concurrent mutation.
//
//	s, err := series.New("Outdoor temperature",
//	    series.WithIdentifier("temp-1"),
//	    series.WithUnits("C"),
//	)
//	s.Insert(series.NewRecord(time.Now(), series.Number(21.5), series.WithQuality(192)))
package series
