package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cognicore/deduce/pkg/deduce/config"
)

var (
	// Global flags
	configPath     string
	rulePaths      []string
	transcriptPath string
	strict         bool
	verbose        bool

	// history flags
	historyLimit int

	// Loaded in PersistentPreRunE
	settings *config.Config
	logger   *zap.Logger
)

// rootCmd runs the interactive interpreter
var rootCmd = &cobra.Command{
	Use:   "deduce",
	Short: "deduce - a categorical inference engine",
	Long: `deduce learns statements such as "all dogs are mammals" or
"no cats are dogs" and answers questions such as "are all dogs animals?"
by searching for a chain of taught relationships.

Run without arguments to start the interactive interpreter.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		settings, err = loadConfig(cmd)
		if err != nil {
			return err
		}

		level, _ := settings.Level()
		if verbose {
			level = zapcore.DebugLevel
		}
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

// askCmd runs sentences non-interactively
var askCmd = &cobra.Command{
	Use:   "ask [sentence]...",
	Short: "Run one or more sentences and print each reply",
	Long: `Each argument is one sentence, exactly as it would be typed at the prompt.

Example:
  deduce ask "all dogs are mammals" "all mammals are animals" "are all dogs animals?"`,
	Args:              cobra.MinimumNArgs(1),
	RunE:              runAsk,
	ValidArgsFunction: completeSentence,
}

// historyCmd prints recent transcript exchanges
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the most recent exchanges from the transcript",
	RunE:  runHistory,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (YAML)")
	rootCmd.PersistentFlags().StringArrayVarP(&rulePaths, "rules", "r", nil, "Rule file to load (repeatable)")
	rootCmd.PersistentFlags().StringVar(&transcriptPath, "transcript", "", "SQLite transcript database")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Refuse statements that contradict what is known")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of exchanges to show (0 for all)")

	rootCmd.AddCommand(askCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config and applies flag overrides
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
	}

	flags := cmd.Flags()
	cfg.Rules = append(cfg.Rules, rulePaths...)
	if flags.Changed("transcript") {
		cfg.Transcript = config.Transcript{Driver: config.DriverSQLite, Path: transcriptPath}
	}
	if flags.Changed("strict") {
		cfg.Strict = strict
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildComponents loads configuration and constructs the interpreter
func buildComponents(ctx context.Context, cmd *cobra.Command) (*config.Components, error) {
	if settings == nil {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		settings = cfg
	}

	loader := config.Loader{Config: settings, Logger: logger}
	comps, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return comps, nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	comps, err := buildComponents(ctx, cmd)
	if err != nil {
		return err
	}
	defer comps.Close()

	out := cmd.OutOrStdout()
	for _, sentence := range args {
		reply, err := comps.Interpreter.Exec(ctx, sentence)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, reply.Text)
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	comps, err := buildComponents(ctx, cmd)
	if err != nil {
		return err
	}
	defer comps.Close()

	out := cmd.OutOrStdout()
	if comps.Transcript == nil {
		fmt.Fprintln(out, "Transcript is disabled.")
		return nil
	}

	exchanges, err := comps.Transcript.Recent(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	if len(exchanges) == 0 {
		fmt.Fprintln(out, "No exchanges recorded.")
		return nil
	}

	// oldest first, in conversation order
	for i := len(exchanges) - 1; i >= 0; i-- {
		ex := exchanges[i]
		fmt.Fprintf(out, "%s  > %s\n", ex.At.Local().Format("2006-01-02 15:04:05"), ex.Line)
		fmt.Fprintf(out, "%s\n", ex.Reply)
	}
	return nil
}

// completeSentence offers shell completion for ask arguments
func completeSentence(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if logger == nil {
		logger = zap.NewNop()
	}
	comps, err := buildComponents(context.Background(), cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	defer comps.Close()

	return comps.Interpreter.Complete(toComplete), cobra.ShellCompDirectiveNoFileComp
}
