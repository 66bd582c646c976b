package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/core/services"
)

// WhoIsOnCmd creates the whoIsOn command
func WhoIsOnCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "whoIsOn <date>",
		Short: "Resolve which engineer covers support on a future date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := duty.ParseDate(args[0])
			if err != nil {
				return err
			}

			today, err := resolveToday(cmd)
			if err != nil {
				return err
			}

			app.Logger.Debug("whoIsOn command",
				zap.String("query", query.String()),
				zap.String("today", today.String()))

			result, err := services.WhoIsOn(app.Ctx, app.Database, app.Logger, query, today)
			if err != nil {
				return err
			}

			marker := ""
			if result.Reserved {
				marker = " (reserved)"
			}
			fmt.Printf("\n%s (%s): %s%s\n",
				result.Date,
				result.Date.Weekday(),
				result.Engineer.Name,
				marker,
			)
			fmt.Printf("Engineer ID: %s\n", result.Engineer.ID)

			return nil
		},
	}

	addTodayFlag(cmd)

	return cmd
}
