// Package root contains the root command for the application
package root

import (
	"fjacquet/budget-sync/internal/config"
	"fjacquet/budget-sync/internal/container"
	"fjacquet/budget-sync/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Ledger  string
	Budgets string
	Format  string
	Output  string
}

// LogFlags override the configured logging
type LogFlags struct {
	Level  string
	Format string
}

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppConfig is the configuration loaded before any subcommand runs
	AppConfig *config.Config

	// AppContainer holds the wired dependencies for the running command
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-sync",
		Short: "Keep budget spend in sync with a transaction ledger.",
		Long: `budget-sync reconciles category budgets against a transaction ledger.
It backfills new budgets from history, replays ledger events through the
incremental path and checks the result against a full recompute.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to budget-sync!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if err := Setup(); err != nil {
				Log.Fatalf("Failed to initialize: %v", err)
			}
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if AppContainer != nil {
				if err := AppContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close container")
				}
			}
		},
	}

	// SharedFlags are accessible to all commands
	SharedFlags = CommonFlags{}

	// LogOverrides are the --log-level and --log-format flags
	LogOverrides = LogFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Ledger, "ledger", "l", "", "Ledger CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Budgets, "budgets", "b", "", "Budgets YAML file (default from config)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Report format: text, json or csv (default from config)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file (default stdout)")
	Cmd.PersistentFlags().StringVar(&LogOverrides.Level, "log-level", "", "Log level override")
	Cmd.PersistentFlags().StringVar(&LogOverrides.Format, "log-format", "", "Log format override: text or json")
}

// Setup loads configuration, applies flag overrides and builds the container.
func Setup() error {
	config.LoadEnv()

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	if LogOverrides.Level != "" {
		cfg.Log.Level = LogOverrides.Level
	}
	if LogOverrides.Format != "" {
		cfg.Log.Format = LogOverrides.Format
	}
	if SharedFlags.Budgets == "" {
		SharedFlags.Budgets = cfg.Data.BudgetsFile
	}
	if SharedFlags.Format == "" {
		SharedFlags.Format = cfg.Report.Format
	}

	c, err := container.NewContainerWithLogger(cfg,
		logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg)))
	if err != nil {
		return err
	}

	AppConfig = cfg
	AppContainer = c
	Log = c.GetLogger()
	return nil
}

// GetContainer returns the application container, nil before Setup
func GetContainer() *container.Container {
	return AppContainer
}

// GetConfig returns the application configuration, nil before Setup
func GetConfig() *config.Config {
	return AppConfig
}
