package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/onyedikachi-david/OpenAdapt/internal/output"
)

func NewVisualizeCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visualize <db_name>",
		Short: "Visualize a recording database",
		Long:  "Apply pending schema migrations to the named recording database and render a summary of its contents.\nThe active-database setting is repointed for the duration of the call and restored afterwards.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)
			dbName := args[0]

			formatter.Visualizing(dbName)
			return deps.App.Visualize.Execute(cmd.Context(), dbName)
		},
	}

	return cmd
}
