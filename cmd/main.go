package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DipperMason/desk-calculator/internal/calculator"
	"github.com/DipperMason/desk-calculator/internal/config"
	"github.com/DipperMason/desk-calculator/internal/keypad"
	"github.com/DipperMason/desk-calculator/internal/logger"
	"github.com/DipperMason/desk-calculator/internal/settings"
	"github.com/DipperMason/desk-calculator/internal/tui"
)

var (
	configFile   string
	angleUnit    string
	settingsPath string
	logLevel     string
	logPath      string
)

var rootCmd = &cobra.Command{
	Use:   "calculator",
	Short: "Desk calculator for the terminal",
	Long: `A desk calculator with one pending operation at a time:
+ - × ÷ ^, square and cube roots, sin/cos/tan in degrees or radians.

Run without arguments for the interactive keypad, or use 'calculator keys'
to replay a key sequence.`,
	SilenceUsage: true,
	RunE:         runTUI,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", config.GetConfigPath(), "Configuration file (JSON)")
	rootCmd.PersistentFlags().StringVar(&angleUnit, "angle-unit", "", "Angle unit for sin/cos/tan: degrees or radians")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Preference database (sqlite); overrides the config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, none")
	rootCmd.PersistentFlags().StringVar(&logPath, "log-path", "", "Log file")

	rootCmd.AddCommand(keysCmd)
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("angle-unit") {
		cfg.AngleUnit = angleUnit
	}
	if flags.Changed("settings") {
		cfg.SettingsPath = settingsPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-path") {
		cfg.LogPath = logPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("config loaded: angle_unit=%s settings=%s log_level=%s", cfg.AngleUnit, cfg.SettingsPath, cfg.LogLevel)
	return cfg, nil
}

// newEngine creates the engine, restoring the remembered angle unit when a
// preference store is configured. An explicit --angle-unit wins.
func newEngine(ctx context.Context, cmd *cobra.Command, cfg *config.Config, store *settings.Store) (*calculator.Engine, error) {
	unit, err := cfg.Unit()
	if err != nil {
		return nil, err
	}
	if store != nil && !cmd.Flags().Changed("angle-unit") {
		unit, err = store.AngleUnit(ctx, unit)
		if err != nil {
			logger.Warn("failed to restore angle unit: %v", err)
		}
	}

	engine := calculator.New()
	engine.SetAngleUnit(unit)
	return engine, nil
}

func openStore(cfg *config.Config) *settings.Store {
	if cfg.SettingsPath == "" {
		return nil
	}
	store, err := settings.Open(cfg.SettingsPath)
	if err != nil {
		logger.Warn("preferences disabled: %v", err)
		return nil
	}
	return store
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Global().Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store := openStore(cfg)
	if store != nil {
		defer store.Close()
	}

	engine, err := newEngine(ctx, cmd, cfg, store)
	if err != nil {
		return err
	}

	logger.Info("calculator starting (angle unit %s)", engine.AngleUnit())
	panel := keypad.NewPanel(engine, nil)
	if _, err := tea.NewProgram(tui.New(panel)).Run(); err != nil {
		logger.Error("terminal UI failed: %v", err)
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	if store != nil {
		if err := store.SaveAngleUnit(ctx, engine.AngleUnit()); err != nil {
			logger.Warn("failed to save angle unit: %v", err)
		}
	}
	logger.Info("calculator stopped")
	return nil
}
