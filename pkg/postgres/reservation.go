package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/oncall-rota/pkg/db"
)

// GetReservations retrieves all reservation records
func (d *DB) GetReservations(ctx context.Context) ([]db.Reservation, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT service_date, engineer_id
		FROM reservation
		ORDER BY service_date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []db.Reservation
	for rows.Next() {
		var r db.Reservation
		var serviceDate time.Time
		if err := rows.Scan(&serviceDate, &r.EngineerID); err != nil {
			return nil, fmt.Errorf("failed to scan reservation: %w", err)
		}
		r.ServiceDate = serviceDate.Format("2006-01-02")
		reservations = append(reservations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reservations: %w", err)
	}

	return reservations, nil
}
