package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/services"
)

// EngineerMonthCmd creates the engineerMonth command
func EngineerMonthCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "engineerMonth <engineer_id> <year> <month>",
		Short: "List the dates an engineer is due to cover support in a month",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			engineerID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid engineer id %q: %w", args[0], err)
			}

			year, month, err := parseYearMonth(args[1], args[2])
			if err != nil {
				return err
			}

			today, err := resolveToday(cmd)
			if err != nil {
				return err
			}

			app.Logger.Debug("engineerMonth command",
				zap.String("engineer_id", engineerID.String()),
				zap.Int("year", year),
				zap.String("month", month.String()))

			dates, err := services.EngineerMonth(app.Ctx, app.Database, app.Logger, engineerID, year, month, today)
			if err != nil {
				return err
			}

			if len(dates) == 0 {
				fmt.Printf("\nNo support days for engineer %s in %s %d.\n", engineerID, month, year)
				return nil
			}

			fmt.Printf("\nSupport days in %s %d:\n", month, year)
			for _, date := range dates {
				fmt.Printf("  %s (%s)\n", date, date.Weekday())
			}
			fmt.Println()

			return nil
		},
	}

	addTodayFlag(cmd)

	return cmd
}
