package duty

import (
	"fmt"
	"time"
)

// DateLayout is the wire and display format for calendar dates.
const DateLayout = "2006-01-02"

// Date is an immutable calendar date with no time-of-day component, always
// interpreted as a UTC calendar day. The zero value is the zero date and is
// never a valid roster date. Date is comparable and safe to use as a map key.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate builds a Date from year, month and day. Out-of-range components are
// normalized the same way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time.Time to its UTC calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{year: y, month: m, day: d}
}

// ParseDate parses a date in DateLayout form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns the date as a time.Time at UTC midnight.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

// Year returns the calendar year.
func (d Date) Year() int { return d.year }

// Month returns the calendar month.
func (d Date) Month() time.Month { return d.month }

// Day returns the day of the month.
func (d Date) Day() int { return d.day }

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday { return d.Time().Weekday() }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d == Date{} }

// IsBusinessDay reports whether the date falls on Monday through Friday.
func (d Date) IsBusinessDay() bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// StepBack returns the date n days earlier. It fails with ErrDateOutOfRange
// when the result would fall before year 1.
func (d Date) StepBack(n int) (Date, error) {
	if n < 0 {
		return Date{}, fmt.Errorf("cannot step back a negative number of days (%d)", n)
	}
	earlier := DateOf(d.Time().AddDate(0, 0, -n))
	if earlier.year < 1 {
		return Date{}, fmt.Errorf("%w: %d days before %s", ErrDateOutOfRange, n, d)
	}
	return earlier, nil
}

// DaysUntil returns the signed number of days from d to other, positive when
// other is later. Computed on whole Unix days so distant dates cannot
// overflow a time.Duration.
func (d Date) DaysUntil(other Date) int {
	const secondsPerDay = 24 * 60 * 60
	return int(other.Time().Unix()/secondsPerDay - d.Time().Unix()/secondsPerDay)
}

// Format renders the date in DateLayout form.
func (d Date) Format() string { return d.Time().Format(DateLayout) }

func (d Date) String() string { return d.Format() }
