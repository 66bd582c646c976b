package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/db"
)

// ServingResult describes who covers support on a queried date
type ServingResult struct {
	Engineer duty.Engineer
	Date     duty.Date
	// Reserved is true when the date was pinned by an explicit reservation
	// rather than resolved through the rotation.
	Reserved bool
}

// WhoIsOn resolves which engineer covers support on the given future date.
// today is supplied by the caller so resolution stays deterministic; it is
// never read from the system clock here.
func WhoIsOn(ctx context.Context, store db.RosterStore, logger *zap.Logger, query, today duty.Date) (*ServingResult, error) {
	logger.Info("Resolving serving engineer",
		zap.String("query_date", query.String()),
		zap.String("today", today.String()))

	records, err := store.GetEngineers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch engineers: %w", err)
	}
	reservationRecords, err := store.GetReservations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}

	logger.Debug("Roster loaded",
		zap.Int("engineers", len(records)),
		zap.Int("reservations", len(reservationRecords)))

	dept, err := buildDepartment(records, reservationRecords)
	if err != nil {
		return nil, err
	}

	engineer, err := dept.EngineerServingOn(query, today)
	if err != nil {
		return nil, err
	}

	reserved := false
	for _, rec := range reservationRecords {
		if rec.ServiceDate == query.Format() {
			reserved = true
			break
		}
	}

	logger.Info("Serving engineer resolved",
		zap.String("engineer", engineer.Name),
		zap.String("engineer_id", engineer.ID.String()),
		zap.Bool("reserved", reserved))

	return &ServingResult{Engineer: engineer, Date: query, Reserved: reserved}, nil
}
