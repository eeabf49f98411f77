package cli

import (
	"github.com/spf13/cobra"

	"github.com/onyedikachi-david/OpenAdapt/config"
	"github.com/onyedikachi-david/OpenAdapt/internal/app"
	"github.com/onyedikachi-david/OpenAdapt/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "openadapt",
		Short: "Share recordings between computers",
		Long:  "A CLI tool that exports recordings to zip archives and moves them between computers via magic-wormhole.",
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewSendCmd(deps))
	rootCmd.AddCommand(NewReceiveCmd(deps))
	rootCmd.AddCommand(NewVisualizeCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))
	rootCmd.AddCommand(NewCompleteCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
