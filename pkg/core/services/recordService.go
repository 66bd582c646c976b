package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/db"
)

// RecordService records that an engineer covered support on serviceDate and
// persists the updated last-served date. The domain transform runs first;
// nothing is written unless it succeeds, so the stored roster never holds a
// partially applied update.
func RecordService(ctx context.Context, store db.RosterStore, logger *zap.Logger, engineerID uuid.UUID, serviceDate duty.Date) (duty.Engineer, error) {
	logger.Info("Recording support service",
		zap.String("engineer_id", engineerID.String()),
		zap.String("service_date", serviceDate.String()))

	records, err := store.GetEngineers(ctx)
	if err != nil {
		return duty.Engineer{}, fmt.Errorf("failed to fetch engineers: %w", err)
	}
	reservationRecords, err := store.GetReservations(ctx)
	if err != nil {
		return duty.Engineer{}, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	dept, err := buildDepartment(records, reservationRecords)
	if err != nil {
		return duty.Engineer{}, err
	}

	updated, err := dept.RecordService(engineerID, serviceDate)
	if err != nil {
		return duty.Engineer{}, err
	}

	engineer, err := updated.EngineerByID(engineerID)
	if err != nil {
		return duty.Engineer{}, err
	}

	if err := store.UpdateLastServed(ctx, engineerID.String(), serviceDate.Format()); err != nil {
		return duty.Engineer{}, fmt.Errorf("failed to persist last-served date: %w", err)
	}

	logger.Info("Service recorded",
		zap.String("engineer", engineer.Name),
		zap.String("last_served", engineer.LastServed.String()))

	return engineer, nil
}
