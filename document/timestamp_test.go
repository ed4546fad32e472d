package document

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/jts/errs"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), "2024-05-01T10:00:00Z"},
		{time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.UTC), "2024-05-01T10:00:00.123456Z"},
		{time.Date(2024, 5, 1, 10, 0, 0, 1, time.UTC), "2024-05-01T10:00:00.000000001Z"},
		{time.Date(2024, 5, 1, 10, 0, 0, 500_000_000, time.FixedZone("", 2*3600)), "2024-05-01T10:00:00.5+02:00"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, FormatTimestamp(tt.in))
	}
}

func TestParseTimestamp(t *testing.T) {
	utc := func(h, m, s, ns int) time.Time {
		return time.Date(2024, 5, 1, h, m, s, ns, time.UTC)
	}

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-05-01T10:00:00Z", utc(10, 0, 0, 0)},
		{"2024-05-01T10:00:00.123456Z", utc(10, 0, 0, 123456000)},
		{"2024-05-01T12:00:00.5+02:00", utc(10, 0, 0, 500_000_000)},
		{"2024-05-01T12:00:00+0200", utc(10, 0, 0, 0)},
		{"2024-05-01T10:00:00.123456", utc(10, 0, 0, 123456000)},
		{"2024-05-01T10:00:00", utc(10, 0, 0, 0)},
		{"2024-05-01 10:00:00.25", utc(10, 0, 0, 250_000_000)},
		{"2024-05-01T10:30", utc(10, 30, 0, 0)},
		{"2024-05-01", utc(0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestParseTimestamp_IsoformatUTC(t *testing.T) {
	// isoformat() writes six fractional digits and a +00:00 offset.
	want := time.Date(2024, 5, 1, 10, 0, 0, 500_000_000, time.UTC)
	require.Equal(t, "2024-05-01T10:00:00.5Z", FormatTimestamp(want))

	for _, in := range []string{
		"2024-05-01T10:00:00.500000+00:00",
		FormatTimestamp(want),
	} {
		got, err := ParseTimestamp(in)
		require.NoError(t, err)
		require.True(t, want.Equal(got), "got %s for %q", got, in)
	}

	got, err := ParseTimestamp("2024-05-01T10:00:00+00:00")
	require.NoError(t, err)
	require.True(t, want.Truncate(time.Second).Equal(got))
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2024-13-01T00:00:00Z", "1714557600", "2024/05/01"} {
		_, err := ParseTimestamp(in)
		require.ErrorIs(t, err, errs.ErrInvalidTimestamp, in)
	}
}

func TestTimestamp_RoundTrip(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 987654321, time.UTC)

	got, err := ParseTimestamp(FormatTimestamp(ts))
	require.NoError(t, err)
	require.True(t, ts.Equal(got))
}
