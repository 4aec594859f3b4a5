// Package cmd implements the knights command line.
package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/crillab/knights/config"
	"github.com/crillab/knights/logic"
)

// app holds the state shared by all subcommands.
type app struct {
	cfgFile  string
	workers  int
	logLevel string
	noColor  bool

	cfg    config.Config
	logger *zap.Logger
	colors palette
}

// NewRootCmd returns the knights command and all its subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop(), colors: newPalette(true)}
	rootCmd := &cobra.Command{
		Use:   "knights [puzzle files...]",
		Short: "knights - solves knights-and-knaves puzzles by model checking",
		Long: `Solves knights-and-knaves puzzles by checking which facts are entailed by their knowledge base.
Without arguments, the builtin puzzles and the ones listed in the configuration file are solved.`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runSolve,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", config.DefaultPath, "Path to the configuration file")
	flags.IntVar(&a.workers, "workers", 1, "Number of goroutines enumerating models (overrides the configuration file)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "Logging level: debug, info, warn or error (overrides the configuration file)")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(a.solveCmd())
	rootCmd.AddCommand(a.checkCmd())
	rootCmd.AddCommand(a.countCmd())
	rootCmd.AddCommand(a.evalCmd())
	rootCmd.AddCommand(a.initCmd())
	return rootCmd
}

// Execute runs the knights command with the arguments of the process.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if a.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), lvl)
	a.colors = newPalette(cfg.Color)
	a.logger.Debug("configuration loaded",
		zap.String("path", a.cfgFile),
		zap.Int("workers", cfg.Workers),
		zap.Strings("puzzles", cfg.Puzzles))
	return nil
}

func newLogger(w io.Writer, lvl zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.Lock(zapcore.AddSync(w)), lvl)
	return zap.New(core)
}

func (a *app) checker() *logic.Checker {
	return &logic.Checker{Workers: a.cfg.Workers, Logger: a.logger}
}
