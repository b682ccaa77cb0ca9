package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"motor-match/internal/motor/model"
	"motor-match/internal/motor/service"
)

func (cli *CLI) newFilterCmd() *cobra.Command {
	var (
		seriesName string
		query      string
		bounds     = map[string]*float64{}
	)
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Filter a series by stall torque, speed and size bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var series *model.Series
			switch seriesName {
			case model.SeriesSource:
				series = cli.catalog.Source
			case model.SeriesTarget:
				series = cli.catalog.Target
			default:
				return fmt.Errorf("--series must be %q or %q, got %q", model.SeriesSource, model.SeriesTarget, seriesName)
			}

			// только явно заданные флаги становятся границами
			pick := func(name string) *float64 {
				if !cmd.Flags().Changed(name) {
					return nil
				}
				return bounds[name]
			}
			filters := model.AdvancedFilters{
				MoMin:     pick("mo-min"),
				MoMax:     pick("mo-max"),
				RpmMin:    pick("rpm-min"),
				RpmMax:    pick("rpm-max"),
				LengthMax: pick("length-max"),
				WidthMax:  pick("width-max"),
			}

			records := series.Records()
			if query != "" {
				if len([]rune(strings.TrimSpace(query))) < service.MinQueryLen {
					cli.printf("query %q is too short: need at least %d characters\n", query, service.MinQueryLen)
					return nil
				}
				records = service.Search(series, query)
				if len(records) == 0 {
					cli.printf("no %s models match %q\n", series.Name(), query)
					return nil
				}
			}
			out := service.ApplyFilters(records, filters)
			cli.logger.Debug().Str("series", series.Name()).Int("in", len(records)).Int("out", len(out)).Msg("filter")

			if len(out) == 0 {
				cli.printf("no %s models within the given bounds\n", series.Name())
				return nil
			}
			cli.printRecords(out)
			return nil
		},
	}

	cmd.Flags().StringVar(&seriesName, "series", model.SeriesTarget, "Series to filter: source or target")
	cmd.Flags().StringVar(&query, "query", "", "Narrow by model search before filtering")
	for _, name := range []string{"mo-min", "mo-max", "rpm-min", "rpm-max", "length-max", "width-max"} {
		v := new(float64)
		bounds[name] = v
		cmd.Flags().Float64Var(v, name, 0, "Bound: "+name)
	}
	return cmd
}
