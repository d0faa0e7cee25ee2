package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newFileCmd() *cobra.Command {
	var tsv bool

	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Analyze a saved game page",
		Long:  "Run the same analysis as stats over a locally saved copy of the game page HTML.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pageHTML, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read game page: %w", err)
			}
			return runPipeline(string(pageHTML), tsv, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&tsv, "tsv", false, "Emit TSV instead of aligned tables")

	return cmd
}
