package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/oncall-rota/pkg/db"
)

// GetEngineers retrieves all engineer records
func (d *DB) GetEngineers(ctx context.Context) ([]db.Engineer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, last_served
		FROM engineer
		ORDER BY last_served
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query engineers: %w", err)
	}
	defer rows.Close()

	var engineers []db.Engineer
	for rows.Next() {
		var e db.Engineer
		var lastServed time.Time
		if err := rows.Scan(&e.ID, &e.Name, &lastServed); err != nil {
			return nil, fmt.Errorf("failed to scan engineer: %w", err)
		}
		e.LastServed = lastServed.Format("2006-01-02")
		engineers = append(engineers, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating engineers: %w", err)
	}

	return engineers, nil
}

// InsertEngineer inserts a new engineer record
func (d *DB) InsertEngineer(ctx context.Context, engineer *db.Engineer) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO engineer (id, name, last_served)
		VALUES ($1, $2, $3)
	`, engineer.ID, engineer.Name, engineer.LastServed)
	if err != nil {
		return fmt.Errorf("failed to insert engineer: %w", err)
	}
	return nil
}

// UpdateLastServed sets an engineer's last-served date
func (d *DB) UpdateLastServed(ctx context.Context, engineerID, lastServed string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE engineer SET last_served = $2 WHERE id = $1
	`, engineerID, lastServed)
	if err != nil {
		return fmt.Errorf("failed to update last_served: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no engineer with id %s", engineerID)
	}
	return nil
}
