package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jts/format"
	"github.com/arloliu/jts/series"
)

var (
	testNow         = time.Date(2024, 5, 1, 10, 1, 0, 123456000, time.UTC)
	testOneMinAgo   = testNow.Add(-time.Minute)
	testNowTS       = "2024-05-01T10:01:00.123456Z"
	testOneMinAgoTS = "2024-05-01T10:00:00.123456Z"
)

func mustSeries(t *testing.T, name string, opts ...series.Option) *series.Series {
	t.Helper()

	s, err := series.New(name, opts...)
	require.NoError(t, err)

	return s
}

func mustDocument(t *testing.T, s ...*series.Series) *Document {
	t.Helper()

	doc, err := New(WithSeries(s...))
	require.NoError(t, err)

	return doc
}

// twoNumberSeries mirrors the reference two-series document: values are
// given as text and cast to numbers, and series_2 lists its records newest first.
func twoNumberSeries(t *testing.T) *Document {
	t.Helper()

	s1 := mustSeries(t, "Series 1",
		series.WithIdentifier("series_1"),
		series.WithDataType(format.TypeNumber),
		series.WithRecords(
			series.NewRecord(testOneMinAgo, series.Text("1.23"), series.WithQuality(192), series.WithAnnotation("comment")),
			series.NewRecord(testNow, series.Text("2.34"), series.WithQuality(245), series.WithAnnotation("comment number 2")),
		),
	)
	s2 := mustSeries(t, "Series 2",
		series.WithIdentifier("series_2"),
		series.WithDataType(format.TypeNumber),
		series.WithUnits("C"),
		series.WithRecords(
			series.NewRecord(testNow, series.Text("1.11"), series.WithQuality(111), series.WithAnnotation("comment ts2 111")),
			series.NewRecord(testOneMinAgo, series.Text("2.22"), series.WithQuality(222), series.WithAnnotation("comment ts2")),
		),
	)

	return mustDocument(t, s1, s2)
}
