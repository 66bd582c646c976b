package duty

import "errors"

// Sentinel errors returned by the duty domain. Callers match them with
// errors.Is; wrapping adds the offending dates and names.
var (
	// ErrDateOutOfRange is returned when backward date arithmetic underflows
	// the representable calendar range.
	ErrDateOutOfRange = errors.New("date is out of range")

	// ErrNonFutureDate is returned when resolution is attempted for a date
	// that is not strictly after the supplied "today".
	ErrNonFutureDate = errors.New("cannot resolve service history for a non-future date")

	// ErrNoEngineerFound is returned when no roster entry matches the
	// resolved reference date or the requested identifier.
	ErrNoEngineerFound = errors.New("no engineer found")

	// ErrDuplicateLastServed is returned when a roster change would leave two
	// engineers sharing a last-served date. The reverse index is keyed by
	// that date, so it must stay one-to-one.
	ErrDuplicateLastServed = errors.New("duplicate last-served date")

	// ErrNotBusinessDay is returned when service is recorded on a weekend.
	ErrNotBusinessDay = errors.New("not a business day")

	// ErrDegenerateRota is returned when the rota length is zero, which
	// happens with an empty roster.
	ErrDegenerateRota = errors.New("degenerate rota of length zero")
)
