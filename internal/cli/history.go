package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func (cli *CLI) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show conversions recorded in the catalog history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := cli.history.List()
			if len(entries) == 0 {
				cli.printf("history is empty\n")
				return nil
			}
			for _, e := range entries {
				cli.printf("%s  %s  %s -> %s\n", e.ID, e.CreatedAt.Format(time.RFC3339), e.SourceModel, e.TargetModel)
			}
			return nil
		},
	}
}
