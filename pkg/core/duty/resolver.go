package duty

import "fmt"

// LastServiceDate maps a future query date to the reference date: the date on
// which the engineer due for duty on the query date last served. The query
// must be strictly after today; resolution is forward-looking only.
//
// The engineer due on the query date is the one whose slot sits a whole cycle
// behind it, so the reference date is found by stepping back the remainder of
// the cycle and snapping onto a business day.
func LastServiceDate(query, today Date, rota Rota) (Date, error) {
	if rota.IsDegenerate() {
		return Date{}, ErrDegenerateRota
	}

	daysAhead := today.DaysUntil(query)
	if daysAhead <= 0 {
		return Date{}, fmt.Errorf("%w: %s is not after %s", ErrNonFutureDate, query, today)
	}

	daysIntoCycle := daysAhead % rota.LengthInDays()
	daysToGoBack := rota.LengthInDays() - daysIntoCycle

	candidate, err := query.StepBack(daysToGoBack)
	if err != nil {
		return Date{}, err
	}
	return snapToBusinessDay(candidate)
}

// snapToBusinessDay applies the weekend compaction rule. A weekend candidate
// is taken to be immediately preceded by the business day two days earlier;
// that holds because RotaForTeamSize reserves two slack days per five
// engineers, so the cycle never lands deeper into a weekend than Sunday.
// This is not a general previous-business-day snap.
func snapToBusinessDay(candidate Date) (Date, error) {
	if candidate.IsBusinessDay() {
		return candidate, nil
	}

	snapped, err := candidate.StepBack(weekendDaysPerWeek)
	if err != nil {
		return Date{}, err
	}

	// Bounded fallback should a future rota formula break the two-slack-day
	// assumption. With Saturday/Sunday weekends the loop body never runs.
	for steps := 0; !snapped.IsBusinessDay(); steps++ {
		if steps == daysPerWeek {
			return Date{}, fmt.Errorf("no business day within a week before %s", candidate)
		}
		snapped, err = snapped.StepBack(1)
		if err != nil {
			return Date{}, err
		}
	}
	return snapped, nil
}
