package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/onyedikachi-david/OpenAdapt/internal/llm"
)

func NewCompleteCmd(deps *Dependencies) *cobra.Command {
	var maxNewTokens int

	cmd := &cobra.Command{
		Use:   "complete <prompt>",
		Short: "Generate a text completion for a prompt",
		Long:  "Load the configured completion model and generate a continuation of the prompt.\nPrompts longer than the configured maximum length are truncated.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			completer, err := llm.NewCompleter(
				deps.App.Registry,
				deps.Config.ModelName,
				deps.Config.ModelMaxLength,
			)
			if err != nil {
				return err
			}

			completion, err := completer.Complete(cmd.Context(), args[0], maxNewTokens)
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stdout, completion)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxNewTokens, "max-tokens", 64, "Maximum number of new tokens to generate")

	return cmd
}
