package duty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2022-12-15")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2022, time.December, 15), d)
	assert.Equal(t, "2022-12-15", d.String())
}

func TestParseDate_Invalid(t *testing.T) {
	tests := []string{"", "not-a-date", "2022-13-01", "2022-02-30", "15/12/2022"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDate(input)
			assert.Error(t, err)
		})
	}
}

func TestIsBusinessDay(t *testing.T) {
	tests := []struct {
		name     string
		date     Date
		expected bool
	}{
		{"Monday", NewDate(2022, time.December, 12), true},
		{"Thursday", NewDate(2022, time.December, 15), true},
		{"Friday", NewDate(2022, time.December, 16), true},
		{"Saturday", NewDate(2022, time.December, 17), false},
		{"Sunday", NewDate(2022, time.December, 18), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.date.IsBusinessDay())
		})
	}
}

func TestStepBack(t *testing.T) {
	tests := []struct {
		name     string
		from     Date
		days     int
		expected Date
	}{
		{"zero days", NewDate(2022, time.December, 15), 0, NewDate(2022, time.December, 15)},
		{"within month", NewDate(2022, time.December, 15), 7, NewDate(2022, time.December, 8)},
		{"across month boundary", NewDate(2022, time.December, 2), 5, NewDate(2022, time.November, 27)},
		{"across year boundary", NewDate(2023, time.January, 3), 7, NewDate(2022, time.December, 27)},
		{"across leap day", NewDate(2024, time.March, 1), 1, NewDate(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := tt.from.StepBack(tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStepBack_Underflow(t *testing.T) {
	early := NewDate(1, time.January, 2)

	_, err := early.StepBack(10)
	assert.ErrorIs(t, err, ErrDateOutOfRange)
}

func TestStepBack_NegativeDays(t *testing.T) {
	_, err := NewDate(2022, time.December, 15).StepBack(-1)
	assert.Error(t, err)
}

func TestDaysUntil(t *testing.T) {
	thursday := NewDate(2022, time.December, 15)

	tests := []struct {
		name     string
		other    Date
		expected int
	}{
		{"same day", thursday, 0},
		{"one week later", NewDate(2022, time.December, 22), 7},
		{"nine days later", NewDate(2022, time.December, 24), 9},
		{"earlier date is negative", NewDate(2022, time.December, 10), -5},
		{"across year boundary", NewDate(2023, time.January, 1), 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, thursday.DaysUntil(tt.other))
		})
	}
}

func TestDateOf_TruncatesToUTCDay(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC
	loc := time.FixedZone("UTC-5", -5*60*60)
	d := DateOf(time.Date(2022, time.December, 15, 23, 30, 0, 0, loc))
	assert.Equal(t, NewDate(2022, time.December, 16), d)
}

func TestDate_UsableAsMapKey(t *testing.T) {
	index := map[Date]string{
		NewDate(2022, time.December, 15): "thursday",
	}

	parsed, err := ParseDate("2022-12-15")
	require.NoError(t, err)
	assert.Equal(t, "thursday", index[parsed])
}
