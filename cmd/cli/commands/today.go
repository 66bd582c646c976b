package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
)

// addTodayFlag registers the --today override on a command. Resolution always
// receives "today" explicitly; the flag replaces the wall clock for
// deterministic runs and testing against fixed dates.
func addTodayFlag(cmd *cobra.Command) {
	cmd.Flags().String("today", "", "Override the current date (YYYY-MM-DD)")
}

// resolveToday reads the --today override, falling back to the system clock's
// UTC calendar date.
func resolveToday(cmd *cobra.Command) (duty.Date, error) {
	override, _ := cmd.Flags().GetString("today")
	if override == "" {
		return duty.DateOf(time.Now()), nil
	}

	today, err := duty.ParseDate(override)
	if err != nil {
		return duty.Date{}, fmt.Errorf("invalid --today value: %w", err)
	}
	return today, nil
}
