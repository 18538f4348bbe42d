package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"backoffice/internal/config"
	"backoffice/internal/rest"
)

var (
	// Global flags
	configPath string
	verbose    bool
	language   string

	logger *zap.Logger
)

// rootCmd launches the interactive dashboard when no subcommand is
// given; the subcommands cover scripted one-shots.
var rootCmd = &cobra.Command{
	Use:   "backoffice",
	Short: "Terminal back office for the course-commerce API",
	Long: `backoffice is a terminal dashboard and CLI for the course-commerce
administration API: organizations, courses, products, offers and their
seat rules, orders, batch orders and vouchers.

Run without arguments to open the interactive dashboard.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = buildLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		loadedConfig = cfg
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(loadedConfig)
		if err != nil {
			return err
		}
		return runDashboard(loadedConfig, client, logger)
	},
}

// loadedConfig is resolved once in PersistentPreRunE.
var loadedConfig *config.Config

// buildLogger writes to the configured file: the dashboard owns the
// terminal, so logs never go to stdout.
func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if verbose || cfg.Logging.Level == "debug" {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cfg.Logging.File != "" {
		zcfg.OutputPaths = []string{cfg.Logging.File}
		zcfg.ErrorOutputPaths = []string{cfg.Logging.File}
	}
	return zcfg.Build()
}

// buildClient resolves the request locale from its ordered sources and
// wires the REST client.
func buildClient(cfg *config.Config) (*rest.Client, error) {
	locale := rest.ResolveLocale(
		language,
		cfg.Locale.TranslateContent,
		cfg.Locale.Interface,
		cfg.Locale.Default,
	)
	return rest.NewClient(rest.Config{
		Root:           cfg.API.Root,
		Token:          cfg.API.Token,
		AcceptLanguage: locale,
		Timeout:        cfg.API.Timeout,
	}, logger)
}

// configInitCmd writes a starter profile.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default profile to the config path",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(configPath); err == nil {
			return fmt.Errorf("refusing to overwrite %s", configPath)
		}
		cfg := config.DefaultConfig()
		if err := cfg.Save(configPath); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", configPath)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the profile file",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "profile file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&language, "language", "", "content language override (e.g. fr-fr)")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd, getCmd, createCmd, updateCmd, deleteCmd, choicesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
