package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/advisor"
	"github.com/abhisek/careerfit/internal/config"
	"github.com/abhisek/careerfit/internal/llm"
	"github.com/abhisek/careerfit/internal/logging"
	"github.com/abhisek/careerfit/internal/questionbank"
	"github.com/abhisek/careerfit/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "careerfit",
	Short: "Career readiness assessment for Reverse Logistics Planners",
	Long: `careerfit walks you through a short assessment of interest, aptitude and
readiness for a Reverse Logistics Planner role, scores it, and suggests
skill gaps, courses and matching careers.

Configuration is read from $XDG_CONFIG_HOME/careerfit/config.yaml (or --config),
CAREERFIT_* environment variables and flags. Set GEMINI_API_KEY, OPENAI_API_KEY,
ANTHROPIC_API_KEY or OPENROUTER_API_KEY to enable AI career advice.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if rt.log != nil {
			_ = rt.log.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runtime is what setup resolves for every command.
type runtime struct {
	cfg *config.Config
	log *zap.Logger
}

var (
	rt runtime
	v  *viper.Viper
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	v = config.New()

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/careerfit/config.yaml)")
	pf.String("db", "", "Path to SQLite database file (overrides CAREERFIT_DB)")
	pf.String("bank", "", "Path to a YAML question bank (default: built-in bank)")
	pf.String("log-level", "", "Log level: debug, info, warn, error")

	for key, flag := range map[string]string{
		"db":        "db",
		"bank":      "bank",
		"log.level": "log-level",
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", flag, err))
		}
	}

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration and builds the logger. Logs always go to a
// file: the TUI owns the terminal and the other commands write results to
// stdout.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, path)
	if err != nil {
		return err
	}

	logFile, err := cfg.LogFile()
	if err != nil {
		return fmt.Errorf("resolve log file: %w", err)
	}
	log, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   logFile,
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	rt = runtime{cfg: cfg, log: log.With(zap.String("command", cmd.Name()))}
	return nil
}

// openStore opens the configured database.
func openStore() (*store.Store, error) {
	dbPath, err := rt.cfg.DBPath()
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// loadBank returns the configured question bank or the built-in one.
func loadBank() (*questionbank.Bank, error) {
	if rt.cfg.Bank == "" {
		return questionbank.Default(), nil
	}
	b, err := questionbank.Load(rt.cfg.Bank)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}
	rt.log.Info("loaded question bank", zap.String("path", rt.cfg.Bank), zap.Int("questions", b.Total()))
	return b, nil
}

// newAdvisor builds an Advisor over the configured LLM. Without a usable
// provider the Advisor is offline-only; that is reported, not fatal.
func newAdvisor(ctx context.Context, events store.EventRepo) *advisor.Advisor {
	provider, err := llm.NewProvider(ctx, rt.cfg.LLM, events, rt.log)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		rt.log.Info("no LLM configured, advice is offline only")
		return advisor.New(nil, advisor.DefaultConfig(), rt.log)
	case err != nil:
		rt.log.Warn("LLM provider unavailable", zap.Error(err))
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI advice will be unavailable.")
		return advisor.New(nil, advisor.DefaultConfig(), rt.log)
	}
	rt.log.Info("LLM provider ready",
		zap.String("provider", provider.Name()),
		zap.String("model", provider.ModelID()))
	return advisor.New(provider, advisor.DefaultConfig(), rt.log)
}
