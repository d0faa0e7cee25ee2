package cli

import (
	"github.com/spf13/cobra"

	"github.com/jdgunter/gaia-project-scraper/internal/scrape"
	"github.com/jdgunter/gaia-project-scraper/pkg/model"
)

func newStatsCmd() *cobra.Command {
	var tsv bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "stats <game-url>",
		Short: "Fetch a game page and print its breakdowns",
		Long:  "Load the game page in a headless browser, rebuild the action log, and print per-faction VP and resource breakdowns.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := model.LoadConfig()
			if err != nil {
				return err
			}
			logger, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			fetcher := scrape.NewFetcher(cfg, logger)
			pageHTML, err := fetcher.FetchGameHTML(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return runPipeline(pageHTML, tsv, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&tsv, "tsv", false, "Emit TSV instead of aligned tables")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}
