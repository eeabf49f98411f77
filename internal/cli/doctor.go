package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/onyedikachi-david/OpenAdapt/internal/output"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if err := deps.App.Wormhole.CheckInstalled(); err != nil {
				f.SetupCheck("wormhole", false, err.Error())
				ok = false
			} else {
				f.SetupCheck("wormhole", true, "installed")
			}

			f.SetupCheck("Database", true, deps.Config.DBPath())
			f.SetupCheck("Recordings directory", true, deps.Config.RecordingsDir)

			if deps.Config.CompletionURL != "" {
				f.SetupCheck("Completion endpoint", true, deps.Config.CompletionURL)
			} else {
				f.SetupCheck("Completion endpoint", false, "not set. Set OPENADAPT_COMPLETION_URL or add completion_url to config (only needed for 'complete')")
			}

			if ok {
				f.Success("\nAll prerequisites met. Ready to share recordings!")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
