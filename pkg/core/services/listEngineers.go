package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/db"
)

// RosterResult holds the parsed roster and the rota derived from its size
type RosterResult struct {
	Engineers []duty.Engineer
	Rota      duty.Rota
}

// ListEngineers loads and validates the roster. Building the department here
// means a stored roster that violates the last-served invariant is reported
// instead of displayed.
func ListEngineers(ctx context.Context, store db.RosterStore, logger *zap.Logger) (*RosterResult, error) {
	records, err := store.GetEngineers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch engineers: %w", err)
	}

	dept, err := buildDepartment(records, nil)
	if err != nil {
		return nil, err
	}

	logger.Info("Roster loaded",
		zap.Int("engineers", len(records)),
		zap.Int("rota_length_days", dept.Rota().LengthInDays()))

	return &RosterResult{Engineers: dept.Engineers(), Rota: dept.Rota()}, nil
}
