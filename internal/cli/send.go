package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onyedikachi-david/OpenAdapt/internal/output"
)

func NewSendCmd(deps *Dependencies) *cobra.Command {
	var recordingID int64

	cmd := &cobra.Command{
		Use:   "send --recording_id=<id>",
		Short: "Send a recording to another computer",
		Long:  "Export the recording to a zip archive and send it via magic-wormhole.\nThe tool prints a one-time code for the receiving side.",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			if err := deps.App.Wormhole.CheckInstalled(); err != nil {
				return err
			}

			formatter.Exporting(recordingID)
			result, err := deps.App.Send.Execute(cmd.Context(), recordingID)
			if err != nil {
				return err
			}

			if result.Sent {
				formatter.SendDone(result.ArchiveName)
				return nil
			}

			// Best-effort policy: a failed transfer is reported but does not
			// fail the command; cleanup already ran.
			formatter.SendFailed(result.TransferErr)
			return nil
		},
	}

	cmd.Flags().Int64Var(&recordingID, "recording_id", 0, "ID of the recording to send")
	if err := cmd.MarkFlagRequired("recording_id"); err != nil {
		panic(fmt.Sprintf("marking recording_id required: %v", err))
	}

	return cmd
}
