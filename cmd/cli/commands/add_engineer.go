package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/oncall-rota/pkg/core/duty"
	"github.com/jakechorley/oncall-rota/pkg/core/services"
)

// AddEngineerCmd creates the addEngineer command
func AddEngineerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addEngineer <name> <last_served>",
		Short: "Add an engineer to the roster with their last-served business day",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			lastServed, err := duty.ParseDate(args[1])
			if err != nil {
				return err
			}

			app.Logger.Debug("addEngineer command",
				zap.String("name", name),
				zap.String("last_served", lastServed.String()))

			engineer, err := services.AddEngineer(app.Ctx, app.Database, app.Logger, name, lastServed)
			if err != nil {
				return err
			}

			fmt.Printf("\nEngineer added: %s\n", engineer.Name)
			fmt.Printf("Engineer ID: %s\n", engineer.ID)
			fmt.Printf("Last served: %s\n", engineer.LastServed)

			return nil
		},
	}
}
