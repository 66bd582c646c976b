package db

// Engineer is a database engineer record. Dates travel as YYYY-MM-DD strings.
type Engineer struct {
	ID         string
	Name       string
	LastServed string
}

// Reservation pins a calendar date to an engineer, overriding rotation
// resolution for that date.
type Reservation struct {
	ServiceDate string
	EngineerID  string
}
