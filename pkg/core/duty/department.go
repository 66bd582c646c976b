package duty

import (
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"
)

// Department owns the engineer roster and answers who covers support on a
// given date. It keeps a reverse index from last-served date to engineer,
// which is what makes rotation resolution a lookup instead of a simulation.
//
// A Department value is never mutated: RecordService returns a fresh,
// consistent department or an error, with no partial state in between.
type Department struct {
	engineers    []Engineer
	byLastServed map[Date]Engineer
	reservations map[Date]Engineer
	rota         Rota
}

// NewDepartment builds a department from an engineer list and optional
// explicit date reservations. The rota length is derived from the team size.
// Fails with ErrDuplicateLastServed if two engineers share a last-served
// date, since the reverse index could not represent both.
func NewDepartment(engineers []Engineer, reservations map[Date]Engineer) (*Department, error) {
	byLastServed := make(map[Date]Engineer, len(engineers))
	for _, e := range engineers {
		if clash, ok := byLastServed[e.LastServed]; ok {
			return nil, fmt.Errorf("%w: %s and %s both last served on %s",
				ErrDuplicateLastServed, clash.Name, e.Name, e.LastServed)
		}
		byLastServed[e.LastServed] = e
	}

	return &Department{
		engineers:    slices.Clone(engineers),
		byLastServed: byLastServed,
		reservations: maps.Clone(reservations),
		rota:         RotaForTeamSize(len(engineers)),
	}, nil
}

// Rota returns the duty cycle derived from the roster size.
func (d *Department) Rota() Rota { return d.rota }

// Engineers returns a copy of the roster.
func (d *Department) Engineers() []Engineer { return slices.Clone(d.engineers) }

// EngineerByID finds a roster member by identifier.
func (d *Department) EngineerByID(id uuid.UUID) (Engineer, error) {
	for _, e := range d.engineers {
		if e.ID == id {
			return e, nil
		}
	}
	return Engineer{}, fmt.Errorf("%w: no engineer with id %s on the roster", ErrNoEngineerFound, id)
}

// EngineerServingOn resolves which engineer covers support on the given
// future date. An explicit reservation for the date wins; otherwise the
// rotation reference date is computed and looked up in the reverse index.
func (d *Department) EngineerServingOn(date, today Date) (Engineer, error) {
	if reserved, ok := d.reservations[date]; ok {
		return reserved, nil
	}

	referenceDate, err := LastServiceDate(date, today, d.rota)
	if err != nil {
		return Engineer{}, err
	}

	engineer, ok := d.byLastServed[referenceDate]
	if !ok {
		return Engineer{}, fmt.Errorf("%w: nobody on the roster last served on %s",
			ErrNoEngineerFound, referenceDate)
	}
	return engineer, nil
}

// RecordService returns a new department in which the identified engineer's
// last-served date is serviceDate, with the reverse index moved accordingly.
// Fails with ErrNotBusinessDay for weekend dates and ErrDuplicateLastServed
// when another engineer already holds serviceDate. The receiver is left
// untouched on every error path.
func (d *Department) RecordService(id uuid.UUID, serviceDate Date) (*Department, error) {
	if !serviceDate.IsBusinessDay() {
		return nil, fmt.Errorf("%w: %s falls on a %s", ErrNotBusinessDay, serviceDate, serviceDate.Weekday())
	}

	idx := slices.IndexFunc(d.engineers, func(e Engineer) bool { return e.ID == id })
	if idx < 0 {
		return nil, fmt.Errorf("%w: no engineer with id %s on the roster", ErrNoEngineerFound, id)
	}

	if occupant, ok := d.byLastServed[serviceDate]; ok && occupant.ID != id {
		return nil, fmt.Errorf("%w: %s already last served on %s",
			ErrDuplicateLastServed, occupant.Name, serviceDate)
	}

	engineers := slices.Clone(d.engineers)
	previous := engineers[idx].LastServed
	engineers[idx].LastServed = serviceDate

	byLastServed := maps.Clone(d.byLastServed)
	delete(byLastServed, previous)
	byLastServed[serviceDate] = engineers[idx]

	return &Department{
		engineers:    engineers,
		byLastServed: byLastServed,
		reservations: d.reservations,
		rota:         d.rota,
	}, nil
}
