package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/db"
)

// AddEngineer adds a new engineer to the roster with the given last-served
// date. The date must be a business day nobody else holds, the same rules
// RecordService enforces.
func AddEngineer(ctx context.Context, store db.RosterStore, logger *zap.Logger, name string, lastServed duty.Date) (duty.Engineer, error) {
	if name == "" {
		return duty.Engineer{}, fmt.Errorf("engineer name must not be empty")
	}
	if !lastServed.IsBusinessDay() {
		return duty.Engineer{}, fmt.Errorf("%w: %s falls on a %s",
			duty.ErrNotBusinessDay, lastServed, lastServed.Weekday())
	}

	records, err := store.GetEngineers(ctx)
	if err != nil {
		return duty.Engineer{}, fmt.Errorf("failed to fetch engineers: %w", err)
	}

	for _, rec := range records {
		if rec.LastServed == lastServed.Format() {
			return duty.Engineer{}, fmt.Errorf("%w: %s already last served on %s",
				duty.ErrDuplicateLastServed, rec.Name, lastServed)
		}
	}

	engineer := duty.Engineer{ID: uuid.New(), Name: name, LastServed: lastServed}

	record := &db.Engineer{
		ID:         engineer.ID.String(),
		Name:       engineer.Name,
		LastServed: engineer.LastServed.Format(),
	}
	if err := store.InsertEngineer(ctx, record); err != nil {
		return duty.Engineer{}, fmt.Errorf("failed to insert engineer: %w", err)
	}

	logger.Info("Engineer added",
		zap.String("engineer_id", engineer.ID.String()),
		zap.String("name", engineer.Name),
		zap.String("last_served", engineer.LastServed.String()))

	return engineer, nil
}
