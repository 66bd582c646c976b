package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/oncall-rota/pkg/core/services"
)

// ListEngineersCmd creates the listEngineers command
func ListEngineersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listEngineers",
		Short: "List the support roster and the derived rota length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ListEngineers(app.Ctx, app.Database, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nRoster: %d engineers, rota length %d days\n\n",
				len(result.Engineers), result.Rota.LengthInDays())
			for _, e := range result.Engineers {
				fmt.Printf("- %s (%s) - last served %s\n", e.Name, e.ID, e.LastServed)
			}

			return nil
		},
	}
}
