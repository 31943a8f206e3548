package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"sahilparate51/resume-relevance/internal/config"
	"sahilparate51/resume-relevance/internal/logger"
	"sahilparate51/resume-relevance/internal/repositories"
)

const app = "resumectl"

var (
	debug   bool
	jsonLog bool

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "resumectl scores resumes against a job description and browses the evaluation history",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLog, "json", "j", false, "json format for logging")

	rootCmd.AddCommand(evaluateCmd, historyCmd, exportCmd)
}

// env is what every sub-command needs: config, logger and the store.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	evalRepo repositories.EvaluationRepository
}

func setup() (*env, error) {
	cfg := config.Load()
	cfg.Log.Debug = cfg.Log.Debug || debug
	cfg.Log.JSON = cfg.Log.JSON || jsonLog
	// gorm SQL logging is noise on a terminal
	cfg.Server.Env = "cli"

	zlog, err := logger.New(cfg.Log.JSON, cfg.Log.Debug, logger.ToStderr())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := config.InitDatabase(cfg, zlog)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:      cfg,
		log:      zlog,
		evalRepo: repositories.NewEvaluationRepository(db),
	}, nil
}
