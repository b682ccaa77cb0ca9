package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

func (cli *CLI) newEquivalentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "equivalents <source-model>",
		Short: "List target motors with the same speed and close stall torque",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := resolve(cli.catalog.Source, args[0])
			if err != nil {
				return err
			}

			ranked := cli.matcher.RankEquivalents(src, cli.catalog)
			cli.logger.Info().
				Str("source", src.Model).
				Float64("tolerance", cli.matcher.Tolerance).
				Int("found", len(ranked)).
				Msg("equivalents")

			if len(ranked) == 0 {
				cli.printf("no compatible replacement found for %s\n", src.Model)
				return nil
			}
			cli.printf("%s: Mo=%s rpm=%s\n", src.Model, num(src.Mo), num(src.Rpm))
			for _, eq := range ranked {
				r := eq.Record
				cli.printf("  %-24s Mo=%-8s rpm=%-6s dMo=%-8s %s%%\n",
					r.Model, num(r.Mo), num(r.Rpm),
					strconv.FormatFloat(eq.Distance, 'f', -1, 64),
					strconv.FormatFloat(eq.Relative*100, 'f', 1, 64))
			}
			return nil
		},
	}
}
