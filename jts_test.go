package jts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jts/document"
	"github.com/arloliu/jts/errs"
	"github.com/arloliu/jts/format"
	"github.com/arloliu/jts/payload"
	"github.com/arloliu/jts/series"
)

func TestEncodeDecode(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	temp, err := NewSeries("Temperature", series.WithIdentifier("temp"), series.WithUnits("C"))
	require.NoError(t, err)
	temp.Insert(NewRecord(now, series.Number(21.5), series.WithQuality(192)))
	temp.Insert(NewRecord(now.Add(time.Minute), series.Number(21.7), series.WithAnnotation("recalibrated")))

	doc, err := NewDocument(document.WithSeries(temp))
	require.NoError(t, err)

	data, err := Encode(doc)
	require.NoError(t, err)
	require.Equal(t,
		`{"docType":"jts","version":"1.0","header":{"startTime":"2024-05-01T10:00:00Z","endTime":"2024-05-01T10:01:00Z","recordCount":2,`+
			`"columns":{"0":{"id":"temp","name":"Temperature","dataType":"NUMBER","units":"C"}}},`+
			`"data":[{"ts":"2024-05-01T10:00:00Z","f":{"0":{"v":21.5,"q":192}}},{"ts":"2024-05-01T10:01:00Z","f":{"0":{"v":21.7,"a":"recalibrated"}}}]}`,
		string(data))

	decoded, err := Decode(data)
	require.NoError(t, err)

	got, ok := decoded.GetSeries("temp")
	require.True(t, ok)
	require.Equal(t, 2, got.Len())
	require.Equal(t, "recalibrated", *got.At(1).Annotation)
}

func TestNewSeries_FreshIdentifiers(t *testing.T) {
	a, err := NewSeries("a")
	require.NoError(t, err)
	b, err := NewSeries("a")
	require.NoError(t, err)

	require.NotEmpty(t, a.Identifier())
	require.NotEqual(t, a.Identifier(), b.Identifier())
	require.Equal(t, format.TypeNumber, a.DataType())
}

func TestEncode_Empty(t *testing.T) {
	doc, err := NewDocument()
	require.NoError(t, err)

	_, err = Encode(doc)
	require.ErrorIs(t, err, errs.ErrNoData)
}

func TestPackUnpack(t *testing.T) {
	state, err := NewSeries("State", series.WithIdentifier("state"), series.WithDataType(format.TypeText),
		series.WithRecords(NewRecord(time.Unix(1714557600, 0).UTC(), series.Text("running"))))
	require.NoError(t, err)

	doc, err := NewDocument(document.WithVersion("1.1"), document.WithSeries(state))
	require.NoError(t, err)

	data, err := Pack(doc, payload.WithCompression(format.CompressionS2), payload.WithBigEndian())
	require.NoError(t, err)

	got, err := Unpack(data)
	require.NoError(t, err)
	require.Equal(t, "1.1", got.Version())
	require.True(t, got.At(0).At(0).Value.Equal(series.Text("running")))
}
