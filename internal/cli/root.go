// Package cli implements the htmlcsv command line.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/htmlcsv/internal/batch"
	"github.com/tsawler/htmlcsv/internal/config"
	"github.com/tsawler/htmlcsv/internal/logging"
)

var (
	flagDir      string
	flagPattern  string
	flagUnescape bool
	flagVerbose  bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "htmlcsv",
	Short: "Convert HTML quote tables to CSV",
	Long: `Converts every *.txt file in the current directory that holds HTML
table rows (<tr>/<td>) into a CSV file with the header
Date,Open,High,Low,Close,Adj Close,Volume.

Each input gets a CSV next to it with the same base name. Files without
table data, or that cannot be read, are reported and skipped; the run
always finishes.

Settings may also come from HTMLCSV_DIR, HTMLCSV_PATTERN, HTMLCSV_UNESCAPE,
HTMLCSV_LOG_LEVEL and HTMLCSV_LOG_DEV. Flags take precedence.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	defaults := config.Default()
	rootCmd.Flags().StringVarP(&flagDir, "dir", "d", defaults.Dir, "directory to scan for input files")
	rootCmd.Flags().StringVarP(&flagPattern, "pattern", "p", defaults.Pattern, "glob pattern selecting input files")
	rootCmd.Flags().BoolVar(&flagUnescape, "unescape", defaults.Unescape, "decode HTML entities such as &amp; in cells")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log each conversion step to stderr")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runConvert(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Development = cfg.Logging.Development

	logger, err := logging.New(logCfg)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("starting", zap.String("dir", cfg.Dir), zap.String("pattern", cfg.Pattern))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err = batch.Run(ctx, batch.Options{
		Dir:      cfg.Dir,
		Pattern:  cfg.Pattern,
		Unescape: cfg.Unescape,
		Out:      cmd.OutOrStdout(),
		Logger:   logger,
	})
	return err
}

// loadConfig reads the environment and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.Dir = flagDir
	}
	if flags.Changed("pattern") {
		cfg.Pattern = flagPattern
	}
	if flags.Changed("unescape") {
		cfg.Unescape = flagUnescape
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = flagLogLevel
	}
	if flagVerbose {
		cfg.Logging.Level = "debug"
	}

	return cfg, nil
}
