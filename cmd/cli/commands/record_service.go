package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/core/services"
)

// RecordServiceCmd creates the recordService command
func RecordServiceCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "recordService <engineer_id> <date>",
		Short: "Record that an engineer covered support on a business day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			engineerID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid engineer id %q: %w", args[0], err)
			}

			serviceDate, err := duty.ParseDate(args[1])
			if err != nil {
				return err
			}

			app.Logger.Debug("recordService command",
				zap.String("engineer_id", engineerID.String()),
				zap.String("service_date", serviceDate.String()))

			engineer, err := services.RecordService(app.Ctx, app.Database, app.Logger, engineerID, serviceDate)
			if err != nil {
				return err
			}

			fmt.Printf("\nService recorded: %s last served on %s\n", engineer.Name, engineer.LastServed)

			return nil
		},
	}
}
