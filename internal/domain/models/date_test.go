package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", d.String())

	_, err = ParseDate("01/06/2024")
	assert.Error(t, err)
}

func TestDateAddDays(t *testing.T) {
	tests := []struct {
		name string
		date Date
		days int
		want string
	}{
		{"within month", NewDate(2024, time.June, 1), 5, "2024-06-06"},
		{"across month", NewDate(2024, time.January, 30), 5, "2024-02-04"},
		{"gestation from new year", NewDate(2024, time.January, 1), 283, "2024-10-10"},
		{"backwards", NewDate(2024, time.March, 1), -1, "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.date.AddDays(tt.days).String())
		})
	}
}

func TestDateDaysUntil(t *testing.T) {
	a := NewDate(2024, time.October, 8)
	b := NewDate(2024, time.October, 10)

	assert.Equal(t, 2, a.DaysUntil(b))
	assert.Equal(t, -2, b.DaysUntil(a))
	assert.Equal(t, 0, a.DaysUntil(a))
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2024, time.June, 1)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, d.Equal(back))
}

func TestDateJSONAcceptsTimestamps(t *testing.T) {
	// Older exports wrote full ISO timestamps; only the date part counts.
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01T08:30:00.000Z"`), &d))
	assert.Equal(t, "2024-06-01", d.String())
}

func TestDateJSONNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}
