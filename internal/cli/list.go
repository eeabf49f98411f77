package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/onyedikachi-david/OpenAdapt/internal/output"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recordings in the active database",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			recs, err := deps.App.DB.ListRecordings(cmd.Context())
			if err != nil {
				return err
			}

			if len(recs) == 0 {
				formatter.Info("No recordings found")
				return nil
			}

			formatter.RecordingListHeader()
			for _, rec := range recs {
				formatter.RecordingListItem(rec.ID, rec.StartedAt(), rec.TaskDescription)
			}

			return nil
		},
	}

	return cmd
}
