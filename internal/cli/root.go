package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gaiastats",
		Short: "Gaia Project game-log statistics",
		Long:  "Gaiastats rebuilds the action log of a Gaia Project game as typed events and breaks down each faction's victory points and resource gains.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		newStatsCmd(),
		newFileCmd(),
	)

	root.Version = Version
	root.SetVersionTemplate(fmt.Sprintf("gaiastats %s\n", Version))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
