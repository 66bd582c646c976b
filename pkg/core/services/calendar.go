package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/db"
)

// CalendarEntry is one resolved day of a support calendar
type CalendarEntry struct {
	Date     duty.Date
	Engineer duty.Engineer
	Reserved bool
}

// CalendarResult holds the resolved support calendar for one month
type CalendarResult struct {
	Year    int
	Month   time.Month
	Entries []CalendarEntry
	// Unresolved lists business days whose reference date matched no roster
	// entry. Dates more than one rotation cycle out resolve to reference
	// dates nobody has served yet, so a partially unresolved month is the
	// normal case, not a data error.
	Unresolved []duty.Date
}

// MonthCalendar resolves the serving engineer for every business day of the
// given month that lies strictly after today. It is a derived read: one
// resolution per date, no separate scheduling algorithm. Dates on or before
// today are omitted since their history cannot be resolved forward.
func MonthCalendar(ctx context.Context, store db.RosterStore, logger *zap.Logger, year int, month time.Month, today duty.Date) (*CalendarResult, error) {
	logger.Info("Building month calendar",
		zap.Int("year", year),
		zap.String("month", month.String()),
		zap.String("today", today.String()))

	records, err := store.GetEngineers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch engineers: %w", err)
	}
	reservationRecords, err := store.GetReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	dept, err := buildDepartment(records, reservationRecords)
	if err != nil {
		return nil, err
	}

	reservedDates := make(map[string]bool, len(reservationRecords))
	for _, rec := range reservationRecords {
		reservedDates[rec.ServiceDate] = true
	}

	businessDays, err := businessDaysOfMonth(year, month)
	if err != nil {
		return nil, err
	}

	result := &CalendarResult{Year: year, Month: month}
	for _, date := range businessDays {
		if today.DaysUntil(date) <= 0 {
			continue
		}

		engineer, err := dept.EngineerServingOn(date, today)
		if errors.Is(err, duty.ErrNoEngineerFound) {
			result.Unresolved = append(result.Unresolved, date)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", date, err)
		}

		result.Entries = append(result.Entries, CalendarEntry{
			Date:     date,
			Engineer: engineer,
			Reserved: reservedDates[date.Format()],
		})
	}

	logger.Info("Calendar built",
		zap.Int("entries", len(result.Entries)),
		zap.Int("unresolved", len(result.Unresolved)))

	return result, nil
}

// EngineerMonth lists the dates within a month on which the identified
// engineer is due to cover support. A filter over MonthCalendar.
func EngineerMonth(ctx context.Context, store db.RosterStore, logger *zap.Logger, engineerID uuid.UUID, year int, month time.Month, today duty.Date) ([]duty.Date, error) {
	calendar, err := MonthCalendar(ctx, store, logger, year, month, today)
	if err != nil {
		return nil, err
	}

	var dates []duty.Date
	for _, entry := range calendar.Entries {
		if entry.Engineer.ID == engineerID {
			dates = append(dates, entry.Date)
		}
	}

	logger.Info("Engineer month resolved",
		zap.String("engineer_id", engineerID.String()),
		zap.Int("support_days", len(dates)))

	return dates, nil
}

// businessDaysOfMonth enumerates the Monday-to-Friday dates of a month
func businessDaysOfMonth(year int, month time.Month) ([]duty.Date, error) {
	first := duty.NewDate(year, month, 1)
	last := duty.NewDate(year, month+1, 0) // day 0 of next month

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.DAILY,
		Dtstart:   first.Time(),
		Until:     last.Time(),
		Byweekday: []rrule.Weekday{rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build business-day rule: %w", err)
	}

	times := rule.All()
	dates := make([]duty.Date, len(times))
	for i, t := range times {
		dates[i] = duty.DateOf(t)
	}
	return dates, nil
}
