package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"motor-match/internal/motor/model"
	"motor-match/internal/motor/service"
)

func (cli *CLI) newSearchCmd() *cobra.Command {
	var target bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search motors by model name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			series := cli.catalog.Source
			if target {
				series = cli.catalog.Target
			}

			hits := service.Search(series, query)
			cli.logger.Debug().Str("query", query).Str("series", series.Name()).Int("hits", len(hits)).Msg("search")
			if len(hits) > 0 {
				cli.printRecords(hits)
				return nil
			}

			cli.printf("no %s models match %q\n", series.Name(), query)
			cli.printSuggestions(series, query)
			return nil
		},
	}
	cmd.Flags().BoolVar(&target, "target", false, "Search the target (FKM) series instead of the source")
	return cmd
}

func (cli *CLI) newSuggestCmd() *cobra.Command {
	var target bool
	cmd := &cobra.Command{
		Use:   "suggest <query>",
		Short: "Propose model names close to a misspelled query",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series := cli.catalog.Source
			if target {
				series = cli.catalog.Target
			}
			if !cli.printSuggestions(series, strings.Join(args, " ")) {
				cli.printf("no suggestions\n")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&target, "target", false, "Suggest from the target (FKM) series")
	return cmd
}

// printSuggestions reports whether anything was printed.
func (cli *CLI) printSuggestions(series *model.Series, query string) bool {
	sugg := service.BuildIndex(series).Suggest(query, cli.cfg.SuggestLimit, cli.cfg.SuggestThreshold)
	if len(sugg) == 0 {
		return false
	}
	cli.printf("did you mean:\n")
	for _, s := range sugg {
		cli.printf("  %-24s %.2f\n", s.Model, s.Score)
	}
	return true
}
