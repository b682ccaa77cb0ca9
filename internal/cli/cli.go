package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"motor-match/internal/catalog"
	"motor-match/internal/config"
	"motor-match/internal/history"
	"motor-match/internal/motor/model"
	"motor-match/internal/motor/service"
)

// Options configure the CLI. Logger overrides config-driven logger setup.
type Options struct {
	Output io.Writer
	Logger *zerolog.Logger
}

// CLI: корневая команда и состояние, собранное в PersistentPreRunE.
type CLI struct {
	opts    Options
	rootCmd *cobra.Command

	configPath  string
	catalogPath string
	logLevel    string

	cfg     config.Config
	logger  zerolog.Logger
	catalog *model.Catalog
	matcher *service.Matcher
	history *history.Store
}

func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	cli := &CLI{opts: opts}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs is used by tests and by main when args come from elsewhere.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "motor-match",
		Short:             "Find FKM replacements for legacy FXM motors",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: cli.setup,
	}
	cmd.SetOut(cli.opts.Output)

	cmd.PersistentFlags().StringVar(&cli.configPath, "config", "", "Path to a config file (yaml, json, toml)")
	cmd.PersistentFlags().StringVar(&cli.catalogPath, "catalog", "", "Catalog file (.json, .xlsx, .xls, .csv); built-in sample if empty")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		cli.newSearchCmd(),
		cli.newSuggestCmd(),
		cli.newEquivalentsCmd(),
		cli.newCompareCmd(),
		cli.newFilterCmd(),
		cli.newHistoryCmd(),
	)
	return cmd
}

// setup: config → logger → catalog. Flags override config values.
func (cli *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cli.configPath)
	if err != nil {
		return err
	}
	if cli.logLevel != "" {
		cfg.LogLevel = cli.logLevel
	}
	if cli.catalogPath != "" {
		cfg.Catalog = cli.catalogPath
	}
	cli.cfg = cfg

	if cli.opts.Logger != nil {
		cli.logger = *cli.opts.Logger
	} else {
		cli.logger = config.SetupLogger(cfg)
	}

	if cfg.Catalog == "" {
		cli.catalog, err = catalog.Sample()
		cli.logger.Debug().Msg("using built-in sample catalog")
	} else {
		cli.catalog, err = catalog.Load(cfg.Catalog, cli.logger)
	}
	if err != nil {
		return err
	}

	cli.matcher = service.NewMatcher(cfg.Tolerance)
	cli.history = history.New(cli.catalog.History, cfg.HistoryLimit)
	return nil
}

func (cli *CLI) printf(format string, args ...any) {
	fmt.Fprintf(cli.opts.Output, format, args...)
}
