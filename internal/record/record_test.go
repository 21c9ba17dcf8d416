package record_test

import (
	"encoding/json"
	"testing"
	"time"

	"vetclinic/internal/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_JSONIsNaiveISO8601(t *testing.T) {
	ts := record.NewTimestamp(time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC))

	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-15T10:30:00"`, string(b))
}

func TestTimestamp_ParseKeepsWallClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2025-03-15T10:30:00", "2025-03-15T10:30:00"},
		{"2025-03-15 10:30:00", "2025-03-15T10:30:00"},
		{"2025-03-15T10:30", "2025-03-15T10:30:00"},
		{"2025-03-15T10:30:00+02:00", "2025-03-15T10:30:00"},
		{"2025-03-15T10:30:00.25", "2025-03-15T10:30:00.250000"},
		{"2025-03-15T10:30:00.5", "2025-03-15T10:30:00.500000"},
		{"2025-03-15T10:30:00.123456789", "2025-03-15T10:30:00.123456"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			ts, err := record.ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ts.String())
		})
	}

	_, err := record.ParseTimestamp("mañana")
	assert.Error(t, err)
}

func TestDate_RoundTrip(t *testing.T) {
	var d record.Date
	require.NoError(t, json.Unmarshal([]byte(`"2020-05-01"`), &d))
	assert.Equal(t, "2020-05-01", d.String())

	require.NoError(t, d.Scan(time.Date(2021, 1, 2, 23, 59, 0, 0, time.FixedZone("x", 3600))))
	assert.Equal(t, "2021-01-02", d.String())

	assert.Error(t, json.Unmarshal([]byte(`"01/05/2020"`), &d))
}

func TestTimestamp_SameDay(t *testing.T) {
	ts := record.NewTimestamp(time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC))
	assert.True(t, ts.SameDay(time.Date(2025, 3, 15, 8, 0, 0, 0, time.UTC)))
	assert.False(t, ts.SameDay(time.Date(2025, 3, 16, 8, 0, 0, 0, time.UTC)))
}

func TestList(t *testing.T) {
	double := func(n int) int { return n * 2 }

	assert.Equal(t, []int{2, 6, 4}, record.List([]int{1, 3, 2}, double))

	empty := record.List[int, int](nil, double)
	require.NotNil(t, empty)
	b, _ := json.Marshal(empty)
	assert.Equal(t, "[]", string(b))
}
