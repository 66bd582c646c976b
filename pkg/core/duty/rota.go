package duty

const (
	businessDaysPerWeek = 5
	weekendDaysPerWeek  = 2
	daysPerWeek         = 7
)

// Rota holds the length of the support duty cycle in days. After that many
// days the duty sequence repeats.
type Rota struct {
	lengthInDays int
}

// NewRota builds a rota with an explicit cycle length.
func NewRota(lengthInDays int) Rota {
	return Rota{lengthInDays: lengthInDays}
}

// RotaForTeamSize derives the cycle length from the number of engineers.
// Every full group of five engineers spans a working week, which drags two
// weekend days into the cycle on top of the engineers' own slots:
//
//	length = n/5*2 + n
func RotaForTeamSize(n int) Rota {
	return Rota{lengthInDays: n/businessDaysPerWeek*weekendDaysPerWeek + n}
}

// LengthInDays returns the cycle length.
func (r Rota) LengthInDays() int { return r.lengthInDays }

// IsDegenerate reports whether the rota has no usable cycle. Resolution over
// a degenerate rota fails with ErrDegenerateRota.
func (r Rota) IsDegenerate() bool { return r.lengthInDays <= 0 }
