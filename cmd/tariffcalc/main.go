// Command tariffcalc computes landed costs, tariff savings and scenario comparisons
// for Vietnam-US trade, and serves the same calculators over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vntrade/tariff-calculator/internal/calculation"
	"github.com/vntrade/tariff-calculator/internal/config"
	"github.com/vntrade/tariff-calculator/internal/logging"
	"go.uber.org/zap"
)

var version = "dev"

// app holds state shared by subcommands once the root pre-run has loaded configuration.
type app struct {
	cfgFile  string
	v        *viper.Viper
	settings config.Settings
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "tariffcalc",
		Short: "Vietnam-US tariff and landed cost calculator",
		Long: `tariffcalc computes the landed cost of goods imported from Vietnam into the US,
projects what a tariff change means for consumers and importers, and compares
up to three sourcing scenarios side by side.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.initConfig,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/tariffcalc/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("rates", "", "rate table YAML replacing the built-in table")
	rootCmd.PersistentFlags().String("schedule", calculation.ScheduleStandard, "built-in rate schedule (standard, pro); ignored with --rates")

	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = a.v.BindPFlag("rates.file", rootCmd.PersistentFlags().Lookup("rates"))
	_ = a.v.BindPFlag("rates.schedule", rootCmd.PersistentFlags().Lookup("schedule"))

	rootCmd.AddCommand(breakdownCmd(a))
	rootCmd.AddCommand(projectCmd(a))
	rootCmd.AddCommand(impactCmd(a))
	rootCmd.AddCommand(compareCmd(a))
	rootCmd.AddCommand(ratesCmd(a))
	rootCmd.AddCommand(newsCmd(a))
	rootCmd.AddCommand(serveCmd(a))
	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initConfig(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		a.v.AddConfigPath(fmt.Sprintf("%s/.config/tariffcalc", home))
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	settings, err := config.LoadSettings(a.v)
	if err != nil {
		return err
	}
	a.settings = settings

	logger, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	a.logger = logger
	return nil
}

// engine builds a calculation engine over the configured rate table.
func (a *app) engine() (*calculation.Engine, error) {
	table, err := calculation.RateTableFor(a.settings.RateSchedule)
	if err != nil {
		return nil, err
	}
	if a.settings.RatesFile != "" {
		loaded, err := config.NewInputParser().LoadRateTable(a.settings.RatesFile)
		if err != nil {
			return nil, err
		}
		table = *loaded
		a.logger.Debug("loaded rate table", zap.String("file", a.settings.RatesFile), zap.String("name", table.Name))
	}
	eng := calculation.NewEngineWithRates(table)
	eng.SetLogger(a.logger.Sugar())
	return eng, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tariffcalc %s\n", version)
		},
	}
}
