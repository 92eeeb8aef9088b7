package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		year  int
	}{
		{name: "rfc3339", input: `"2027-03-01T10:30:00Z"`, year: 2027},
		{name: "rfc3339 with nanos", input: `"2027-03-01T10:30:00.123456789Z"`, year: 2027},
		{name: "naive isoformat with micros", input: `"2027-03-01T10:30:00.123456"`, year: 2027},
		{name: "naive isoformat", input: `"2027-03-01T10:30:00"`, year: 2027},
		{name: "space separated", input: `"2027-03-01 10:30:00"`, year: 2027},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.input), &ts))
			require.Equal(t, tc.year, ts.Year())
		})
	}
}

func TestTimestampUnmarshalNull(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	require.True(t, ts.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`""`), &ts))
	require.True(t, ts.IsZero())
}

func TestTimestampUnmarshalGarbage(t *testing.T) {
	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"next tuesday"`), &ts))
}

func TestTimestampMarshalRoundTrip(t *testing.T) {
	orig := NewTimestamp(time.Date(2027, 3, 1, 10, 30, 0, 0, time.UTC))

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	require.True(t, back.Equal(orig.Time))
}

func TestTimestampMarshalZeroIsNull(t *testing.T) {
	data, err := json.Marshal(Timestamp{})
	require.NoError(t, err)
	require.Equal(t, "null", string(data))
}

func TestTimestampValid(t *testing.T) {
	now := time.Now()
	require.True(t, NewTimestamp(now.Add(time.Minute)).Valid(now))
	require.False(t, NewTimestamp(now.Add(-time.Minute)).Valid(now))
	require.False(t, Timestamp{}.Valid(now))
}
