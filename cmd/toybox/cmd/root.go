// Package cmd holds the cobra command for the toybox binary.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mkelk/toybox/internal/config"
	"github.com/mkelk/toybox/internal/sample"
)

var rootCmd = &cobra.Command{
	Use:   "toybox [args...]",
	Short: "Compute the sample exit status",
	Long: `Compute Subtract(4, 5) + Func(3.4, 5.8) and exit with the result.

Arguments never change the exit status. Positional arguments and unknown
flags are ignored; --help and --version print and still exit with the result.

Examples:
  # Exit with the computed status (8)
  toybox; echo $?

  # Log the intermediate values to stderr
  toybox --verbose`,
	Args:               cobra.ArbitraryArgs,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	SilenceUsage:       true,
	SilenceErrors:      true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE:               runRoot,
}

var (
	configPath  string
	logLevel    string
	verbose     bool
	showVersion bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultFileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log intermediate values")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print the version")
}

// Execute runs the command line and returns the process exit status.
// The status is the sample result for every argv, whatever path cobra
// takes; shell failures are reported on stderr only.
func Execute(args []string) int {
	resetFlags()

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return sample.Main(args)
}

// resetFlags restores every flag, including cobra's lazily added help flag,
// so that repeated Execute calls in one process start clean.
func resetFlags() {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	rootCmd.Flags().VisitAll(reset)
	rootCmd.PersistentFlags().VisitAll(reset)
}

func runRoot(cmd *cobra.Command, args []string) error {
	if showVersion {
		printVersion(cmd.OutOrStdout())
	}

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if verbose {
		sample.Trace(logger)
		return nil
	}
	if len(args) > 0 {
		logger.Debug("ignoring arguments", "count", len(args))
	}
	return nil
}

// newLogger builds a text logger on w whose level comes from, in order,
// --verbose, --log-level, then the config file.
func newLogger(w io.Writer) (*slog.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	level := cfg.Log.SlogLevel()
	if logLevel != "" {
		level, err = config.ParseLevel(logLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

func loadConfig() (config.Config, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := config.LoadOrDefault(config.DefaultFileName)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
