package services

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/db"
)

// buildDepartment turns persisted roster records into a duty.Department.
// Reservations referencing an unknown engineer are rejected rather than
// silently dropped.
func buildDepartment(records []db.Engineer, reservationRecords []db.Reservation) (*duty.Department, error) {
	engineers := make([]duty.Engineer, len(records))
	byID := make(map[uuid.UUID]duty.Engineer, len(records))
	for i, rec := range records {
		engineer, err := parseEngineer(rec)
		if err != nil {
			return nil, err
		}
		engineers[i] = engineer
		byID[engineer.ID] = engineer
	}

	var reservations map[duty.Date]duty.Engineer
	if len(reservationRecords) > 0 {
		reservations = make(map[duty.Date]duty.Engineer, len(reservationRecords))
		for _, rec := range reservationRecords {
			date, err := duty.ParseDate(rec.ServiceDate)
			if err != nil {
				return nil, fmt.Errorf("invalid reservation date: %w", err)
			}
			id, err := uuid.Parse(rec.EngineerID)
			if err != nil {
				return nil, fmt.Errorf("invalid reservation engineer id %q: %w", rec.EngineerID, err)
			}
			engineer, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("reservation for %s references unknown engineer %s", rec.ServiceDate, id)
			}
			reservations[date] = engineer
		}
	}

	return duty.NewDepartment(engineers, reservations)
}

// parseEngineer converts a database record into a domain engineer
func parseEngineer(rec db.Engineer) (duty.Engineer, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return duty.Engineer{}, fmt.Errorf("invalid engineer id %q: %w", rec.ID, err)
	}
	lastServed, err := duty.ParseDate(rec.LastServed)
	if err != nil {
		return duty.Engineer{}, fmt.Errorf("engineer %s has invalid last-served date: %w", rec.Name, err)
	}
	return duty.Engineer{ID: id, Name: rec.Name, LastServed: lastServed}, nil
}
