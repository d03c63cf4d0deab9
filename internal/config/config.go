// Package config holds the run configuration for a sync. Configuration is
// read once, validated before either collaborator is contacted, and passed
// by parameter from there on; nothing reads the environment at call sites.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/vitalsync/vitalsync/pkg/errors"
)

// Environment variable names for the required credentials and run options.
const (
	EnvGarminEmail      = "GARMIN_EMAIL"
	EnvGarminPassword   = "GARMIN_PASSWORD"
	EnvNotionToken      = "NOTION_TOKEN"
	EnvNotionDatabaseID = "NOTION_HEALTH_DATABASE_ID"
	EnvDaysBack         = "HEALTH_DAYS_BACK"
)

// Config is the validated run configuration.
type Config struct {
	GarminEmail      string
	GarminPassword   string
	NotionToken      string
	NotionDatabaseID string

	// Days is the count of most-recent days to process, ending today.
	Days int

	// DryRun disables all database writes.
	DryRun bool
}

// Load builds a Config from viper's bound environment. Defaults: one day,
// writes enabled.
func Load() *Config {
	bindEnv()

	days := viper.GetInt(EnvDaysBack)
	if days == 0 {
		days = 1
	}

	return &Config{
		GarminEmail:      viper.GetString(EnvGarminEmail),
		GarminPassword:   viper.GetString(EnvGarminPassword),
		NotionToken:      viper.GetString(EnvNotionToken),
		NotionDatabaseID: viper.GetString(EnvNotionDatabaseID),
		Days:             days,
	}
}

// Validate checks the configuration, naming every missing credential so the
// operator can fix all of them in one pass.
func (c *Config) Validate() error {
	var missing []string
	if c.GarminEmail == "" {
		missing = append(missing, EnvGarminEmail)
	}
	if c.GarminPassword == "" {
		missing = append(missing, EnvGarminPassword)
	}
	if c.NotionToken == "" {
		missing = append(missing, EnvNotionToken)
	}
	if c.NotionDatabaseID == "" {
		missing = append(missing, EnvNotionDatabaseID)
	}
	if len(missing) > 0 {
		return errors.NewConfigError("credentials",
			"missing required environment variables: "+strings.Join(missing, ", "),
			errors.ErrCredentialRequired)
	}

	if c.Days < 1 {
		return errors.NewConfigError("run",
			fmt.Sprintf("%s must be at least 1, got %d", EnvDaysBack, c.Days), nil)
	}

	return nil
}

// bindEnv registers the credential and option variables with viper so they
// are readable whether set in the environment, a .env file, or a config
// file.
func bindEnv() {
	for _, key := range []string{
		EnvGarminEmail,
		EnvGarminPassword,
		EnvNotionToken,
		EnvNotionDatabaseID,
		EnvDaysBack,
	} {
		_ = viper.BindEnv(key)
	}
}
