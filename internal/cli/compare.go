package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"motor-match/internal/motor/service"
	"motor-match/internal/report"
)

func (cli *CLI) newCompareCmd() *cobra.Command {
	var xlsxPath, csvPath string
	cmd := &cobra.Command{
		Use:   "compare <source-model> <target-model>",
		Short: "Compare a source motor with a target motor field by field",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := resolve(cli.catalog.Source, args[0])
			if err != nil {
				return err
			}
			tgt, err := resolve(cli.catalog.Target, args[1])
			if err != nil {
				return err
			}

			res := service.Compare(src, tgt)
			entry := cli.history.Record(src.Model, tgt.Model)
			rep := report.New(entry, res)
			cli.logger.Info().
				Str("id", entry.ID).
				Str("source", src.Model).
				Str("target", tgt.Model).
				Msg("comparison")

			if err := report.WriteText(cli.opts.Output, rep, report.DefaultTableConfig()); err != nil {
				return fmt.Errorf("write table: %w", err)
			}
			if xlsxPath != "" {
				if err := writeFile(xlsxPath, func(f *os.File) error { return report.WriteXLSX(f, rep) }); err != nil {
					return err
				}
				cli.logger.Info().Str("file", xlsxPath).Msg("xlsx report saved")
			}
			if csvPath != "" {
				if err := writeFile(csvPath, func(f *os.File) error { return report.WriteCSV(f, rep) }); err != nil {
					return err
				}
				cli.logger.Info().Str("file", csvPath).Msg("csv report saved")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Also save the report as an XLSX workbook")
	cmd.Flags().StringVar(&csvPath, "csv", "", "Also save the report as CSV")
	return cmd
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
