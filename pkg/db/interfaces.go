package db

import "context"

// EngineerStore defines the interface for roster persistence operations
type EngineerStore interface {
	GetEngineers(ctx context.Context) ([]Engineer, error)
	InsertEngineer(ctx context.Context, engineer *Engineer) error
	UpdateLastServed(ctx context.Context, engineerID, lastServed string) error
}

// ReservationStore defines the interface for reservation persistence operations
type ReservationStore interface {
	GetReservations(ctx context.Context) ([]Reservation, error)
}

// RosterStore combines everything the service layer needs
type RosterStore interface {
	EngineerStore
	ReservationStore
}
