package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/db"
)

// calendarRoster is arranged so that the first cycle after Thursday
// 2022-12-15 resolves onto known engineers: reference dates for the nearest
// queries land on 2022-12-08 (via the Saturday snap), 2022-12-15 and
// 2022-12-16.
func calendarRoster() []db.Engineer {
	return []db.Engineer{
		{ID: ashaID.String(), Name: "Asha", LastServed: "2022-12-08"},
		{ID: brunoID.String(), Name: "Bruno", LastServed: "2022-12-12"},
		{ID: carmenID.String(), Name: "Carmen", LastServed: "2022-12-14"},
		{ID: devID.String(), Name: "Dev", LastServed: "2022-12-15"},
		{ID: elenaID.String(), Name: "Elena", LastServed: "2022-12-16"},
	}
}

func TestMonthCalendar_December(t *testing.T) {
	mock := &mockStore{engineers: calendarRoster()}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := MonthCalendar(ctx, mock, logger, 2022, time.December, fixtureToday)
	require.NoError(t, err)
	assert.Equal(t, 2022, result.Year)
	assert.Equal(t, time.December, result.Month)

	// Eleven business days follow 2022-12-15 in December 2022; five resolve
	// within the current cycle, the rest reference dates nobody holds yet.
	expected := map[string]string{
		"2022-12-16": "Asha",  // candidate Sat 12-10 snaps to 12-08
		"2022-12-19": "Elena", // candidate Fri 12-16
		"2022-12-20": "Elena", // candidate Sun 12-18 snaps to 12-16
		"2022-12-22": "Dev",   // full cycle back to 12-15
		"2022-12-23": "Dev",   // candidate Sat 12-17 snaps to 12-15
	}

	require.Len(t, result.Entries, len(expected))
	for _, entry := range result.Entries {
		assert.Equal(t, expected[entry.Date.Format()], entry.Engineer.Name, "date %s", entry.Date)
		assert.False(t, entry.Reserved)
	}

	unresolved := make([]string, len(result.Unresolved))
	for i, d := range result.Unresolved {
		unresolved[i] = d.Format()
	}
	assert.Equal(t, []string{
		"2022-12-21", "2022-12-26", "2022-12-27", "2022-12-28", "2022-12-29", "2022-12-30",
	}, unresolved)
}

func TestMonthCalendar_SkipsNonFutureDates(t *testing.T) {
	mock := &mockStore{engineers: calendarRoster()}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := MonthCalendar(ctx, mock, logger, 2022, time.December, fixtureToday)
	require.NoError(t, err)

	for _, entry := range result.Entries {
		assert.Positive(t, fixtureToday.DaysUntil(entry.Date), "entry %s is not in the future", entry.Date)
	}
}

func TestMonthCalendar_ReservationFillsGap(t *testing.T) {
	mock := &mockStore{
		engineers: calendarRoster(),
		reservations: []db.Reservation{
			// 2022-12-21 is otherwise unresolvable in this roster.
			{ServiceDate: "2022-12-21", EngineerID: brunoID.String()},
		},
	}
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := MonthCalendar(ctx, mock, logger, 2022, time.December, fixtureToday)
	require.NoError(t, err)

	var reservedEntry *CalendarEntry
	for i := range result.Entries {
		if result.Entries[i].Date.Format() == "2022-12-21" {
			reservedEntry = &result.Entries[i]
		}
	}
	require.NotNil(t, reservedEntry)
	assert.Equal(t, brunoID, reservedEntry.Engineer.ID)
	assert.True(t, reservedEntry.Reserved)
	assert.Len(t, result.Unresolved, 5)
}

func TestMonthCalendar_EmptyRoster(t *testing.T) {
	mock := &mockStore{}
	logger := zap.NewNop()
	ctx := context.Background()

	_, err := MonthCalendar(ctx, mock, logger, 2022, time.December, fixtureToday)
	assert.ErrorIs(t, err, duty.ErrDegenerateRota)
}

func TestEngineerMonth(t *testing.T) {
	mock := &mockStore{engineers: calendarRoster()}
	logger := zap.NewNop()
	ctx := context.Background()

	dates, err := EngineerMonth(ctx, mock, logger, elenaID, 2022, time.December, fixtureToday)
	require.NoError(t, err)

	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = d.Format()
	}
	assert.Equal(t, []string{"2022-12-19", "2022-12-20"}, formatted)
}

func TestEngineerMonth_NoDuty(t *testing.T) {
	mock := &mockStore{engineers: calendarRoster()}
	logger := zap.NewNop()
	ctx := context.Background()

	dates, err := EngineerMonth(ctx, mock, logger, brunoID, 2022, time.December, fixtureToday)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestBusinessDaysOfMonth(t *testing.T) {
	dates, err := businessDaysOfMonth(2022, time.December)
	require.NoError(t, err)

	// December 2022 has 22 weekdays.
	assert.Len(t, dates, 22)
	for _, d := range dates {
		assert.True(t, d.IsBusinessDay(), "%s", d)
		assert.Equal(t, time.December, d.Month())
	}
	assert.Equal(t, "2022-12-01", dates[0].Format())
	assert.Equal(t, "2022-12-30", dates[len(dates)-1].Format())
}
