package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/services"
)

// CalendarCmd creates the calendar command
func CalendarCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar <year> <month>",
		Short: "Show who covers support on each business day of a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonth(args[0], args[1])
			if err != nil {
				return err
			}

			today, err := resolveToday(cmd)
			if err != nil {
				return err
			}

			app.Logger.Debug("calendar command",
				zap.Int("year", year),
				zap.String("month", month.String()))

			result, err := services.MonthCalendar(app.Ctx, app.Database, app.Logger, year, month, today)
			if err != nil {
				return err
			}

			fmt.Printf("\nSupport calendar for %s %d\n\n", result.Month, result.Year)

			if len(result.Entries) == 0 {
				fmt.Println("No resolvable business days in this month.")
			}
			for _, entry := range result.Entries {
				marker := ""
				if entry.Reserved {
					marker = "  [reserved]"
				}
				fmt.Printf("  %s (%-9s)  %s%s\n",
					entry.Date,
					entry.Date.Weekday(),
					entry.Engineer.Name,
					marker,
				)
			}

			if len(result.Unresolved) > 0 {
				fmt.Printf("\n%d business days have no resolvable engineer yet", len(result.Unresolved))
				fmt.Printf(" (service history does not reach them):\n")
				for _, date := range result.Unresolved {
					fmt.Printf("  %s (%s)\n", date, date.Weekday())
				}
			}
			fmt.Println()

			return nil
		},
	}

	addTodayFlag(cmd)

	return cmd
}

// parseYearMonth parses the year and month command arguments
func parseYearMonth(yearArg, monthArg string) (int, time.Month, error) {
	year, err := strconv.Atoi(yearArg)
	if err != nil || year < 1 {
		return 0, 0, fmt.Errorf("year must be a positive integer, got: %s", yearArg)
	}

	monthNum, err := strconv.Atoi(monthArg)
	if err != nil || monthNum < 1 || monthNum > 12 {
		return 0, 0, fmt.Errorf("month must be 1-12, got: %s", monthArg)
	}

	return year, time.Month(monthNum), nil
}
