package feed

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in     string
		want   time.Time
		offset int
	}{
		{"Tue, 03 Jun 2003 09:39:21 GMT", time.Date(2003, 6, 3, 9, 39, 21, 0, time.UTC), 0},
		{"Tue, 03 Jun 2003 09:39:21 +0000", time.Date(2003, 6, 3, 9, 39, 21, 0, time.UTC), 0},
		{"Tue, 03 Jun 2003 11:39:21 +0200", time.Date(2003, 6, 3, 9, 39, 21, 0, time.UTC), 2 * 3600},
		{"3 Jun 2003 04:39:21 -0500", time.Date(2003, 6, 3, 9, 39, 21, 0, time.UTC), -5 * 3600},
		{"  Tue, 03 Jun 2003 09:39:21 GMT\n", time.Date(2003, 6, 3, 9, 39, 21, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
			_, offset := got.Zone()
			assert.Equal(t, tt.offset, offset)
		})
	}
}

func TestParseDate_KeepsFixedOffset(t *testing.T) {
	got, err := ParseDate("Tue, 03 Jun 2003 11:39:21 +0200")
	require.NoError(t, err)
	assert.Equal(t, "2003-06-03 11:39:21 +02:00", got.Format("2006-01-02 15:04:05 -07:00"))
	name, _ := got.Zone()
	assert.Equal(t, "+02:00", name)
}

func TestParseDate_Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"2003-06-03T09:39:21Z",
		"yesterday",
		"Tue, 03 Jun 2003",
		"Wed, 03 Jun 2003 09:39:21 GMT",
		"Sun, 02 Jun 2003 23:39:21 -1000",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDate(in)
			require.Error(t, err)
			var de *DateError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, in, de.Value)
		})
	}
}

func TestDateError_Message(t *testing.T) {
	_, err := ParseDate("")
	assert.Equal(t, "date parse error: premature end of input", err.Error())

	_, err = ParseDate("yesterday")
	assert.Contains(t, err.Error(), `"yesterday" is not an RFC 2822 date`)

	_, err = ParseDate("Wed, 03 Jun 2003 09:39:21 GMT")
	assert.Contains(t, err.Error(), "day of week Wed does not match date (Tue)")
}

func TestParseDate_WeekdayUsesOwnOffset(t *testing.T) {
	// 2003-06-03 23:39:21 -1000 - это еще вторник, хотя в UTC уже среда
	got, err := ParseDate("Tue, 03 Jun 2003 23:39:21 -1000")
	require.NoError(t, err)
	assert.Equal(t, time.Tuesday, got.Weekday())
}
