// Package cmd implements the vitalsync CLI commands.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vitalsync/vitalsync/pkg/logging"
)

var (
	configFile  string
	flagVerbose bool
	flagQuiet   bool
	flagOutput  string

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vitalsync",
	Short: "Sync Garmin health metrics to Notion",
	Long: `Vitalsync reconciles daily health metrics (HRV, resting heart rate,
VO2 max) from Garmin Connect against a Notion database, upserting one
record per calendar day.

Credentials are read from the environment (or a .env file):
GARMIN_EMAIL, GARMIN_PASSWORD, NOTION_TOKEN, NOTION_HEALTH_DATABASE_ID.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it. The
// process exits non-zero when any command fails, including a sync run where
// any day failed.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	// Interrupts abort the remaining days; there is no partial-day rollback.
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Err(err).Msg("Run failed")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.vitalsync.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false,
		"Minimal output")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text",
		"Summary format: text, json, yaml")
}

// initConfig reads in the config file, loads .env files, and binds
// environment variables.
func initConfig() {
	if configFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(configFile)
	} else {
		// Search config in home directory with name ".vitalsync"
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".vitalsync")
	}

	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// A missing config file is fine; credentials usually come from the
	// environment.
	_ = viper.ReadInConfig()

	configureLogging()
}

// configureLogging sets up the logging system based on flags and environment.
func configureLogging() {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	if flagQuiet {
		level = zerolog.WarnLevel
	}
	if envLevel := os.Getenv("LOG_LEVEL"); envLevel != "" {
		if parsed, err := zerolog.ParseLevel(envLevel); err == nil {
			level = parsed
		}
	}

	logging.SetLevel(level)
}

// loadEnvFiles loads environment variables from .env files. godotenv never
// overrides variables already set, so .env.local is loaded first to take
// precedence over .env, and real environment variables beat both.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}
