package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/onyedikachi-david/OpenAdapt/internal/output"
)

func NewReceiveCmd(deps *Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receive <wormhole_code>",
		Short: "Receive a recording from another computer",
		Long:  "Receive a recording archive via magic-wormhole and unpack it into the recordings directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)
			code := args[0]

			if err := deps.App.Wormhole.CheckInstalled(); err != nil {
				return err
			}

			formatter.Receiving(code)
			result, err := deps.App.Receive.Execute(cmd.Context(), code)
			if err != nil {
				return err
			}

			if result.Received {
				formatter.ReceiveDone(deps.Config.RecordingsDir)
				return nil
			}

			formatter.ReceiveFailed(result.Err)
			return nil
		},
	}

	return cmd
}
