package series

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)

	r := NewRecord(ts, Number(1.5), WithQuality(192), WithAnnotation("comment"))
	require.Equal(t, ts, r.Timestamp)
	require.True(t, r.Value.Equal(Number(1.5)))

	q, ok := r.QualityValue()
	require.True(t, ok)
	require.Equal(t, 192, q)

	a, ok := r.AnnotationValue()
	require.True(t, ok)
	require.Equal(t, "comment", a)
}

func TestRecord_IsEmpty(t *testing.T) {
	ts := time.Now()

	require.True(t, NewRecord(ts, Null()).IsEmpty())
	require.False(t, NewRecord(ts, Number(0)).IsEmpty(), "zero is a value")
	require.False(t, NewRecord(ts, Null(), WithQuality(0)).IsEmpty(), "zero quality is set")
	require.False(t, NewRecord(ts, Null(), WithAnnotation("")).IsEmpty(), "empty annotation is set")
}

func TestRecord_Clone(t *testing.T) {
	r := NewRecord(time.Now(), Text("x"), WithQuality(1), WithAnnotation("a"))
	c := r.Clone()

	*c.Quality = 2
	*c.Annotation = "b"

	q, _ := r.QualityValue()
	a, _ := r.AnnotationValue()
	require.Equal(t, 1, q)
	require.Equal(t, "a", a)

	empty := NewRecord(time.Now(), Null()).Clone()
	require.Nil(t, empty.Quality)
	require.Nil(t, empty.Annotation)
}
