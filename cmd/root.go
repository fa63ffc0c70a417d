// Package cmd provides the command-line interface of packagedsl.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"packagedsl/internal/application/common/logging"
	"packagedsl/internal/application/common/slogger"
	"packagedsl/internal/config"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
	vp      = viper.New()

	shutdownTelemetry func(context.Context) error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "packagedsl",
	Short: "Split a Swift package manifest into typed fragments",
	Long: `packagedsl reads a Swift package described as many small fragment files
(one index binding plus one struct per product, dependency, target, test target
and platform set), validates the references between them, rewrites them in
canonical form and assembles them into a single Package.swift.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupRun,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if shutdownTelemetry != nil {
		if shutdownErr := shutdownTelemetry(context.Background()); shutdownErr != nil {
			fmt.Fprintf(os.Stderr, "Error flushing metrics: %v\n", shutdownErr)
		}
	}
	if err != nil {
		os.Exit(1)
	}
}

func init() { //nolint:gochecknoinits // Standard Cobra CLI pattern for command registration
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.yaml)")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.String("log-format", "text", "Log format (json, text)")
	flags.Int("workers", 4, "Fragments extracted concurrently")
	flags.Bool("syntax-check", false, "Check every fragment against the full Swift grammar")
	flags.Bool("metrics", false, "Print extraction metrics to stderr on exit")

	bindFlag("log.level", flags.Lookup("log-level"))
	bindFlag("log.format", flags.Lookup("log-format"))
	bindFlag("extraction.workers", flags.Lookup("workers"))
	bindFlag("extraction.syntax_check", flags.Lookup("syntax-check"))
	bindFlag("metrics.enabled", flags.Lookup("metrics"))
}

func setupRun(cmd *cobra.Command, _ []string) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = loaded

	if err := slogger.Configure(logging.Config{
		Level:  strings.ToUpper(cfg.Log.Level),
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	}); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithCorrelationID(ctx, logging.NewCorrelationID()))
	return nil
}

func loadConfig() (*config.Config, error) {
	config.SetDefaults(vp)

	if cfgFile != "" {
		vp.SetConfigFile(cfgFile)
	} else {
		vp.SetConfigName("config")
		vp.SetConfigType("yaml")
		vp.AddConfigPath("./configs")
		vp.AddConfigPath(".")
	}

	config.BindEnv(vp)

	if err := vp.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; use defaults and environment
	}

	return config.Load(vp)
}
