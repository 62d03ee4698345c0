// Package config loads application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envFile = "config/.env"

// NewConfig loads configuration from environment using viper with typed defaults and validation.
func NewConfig() (*Config, error) {
	v := viper.New()
	if envMap, err := godotenv.Read(envFile); err == nil {
		for k, v := range envMap {
			if _, exists := os.LookupEnv(k); !exists {
				_ = os.Setenv(k, v)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// comma-separated list in the environment
	if raw := v.GetString("filter.projects"); raw != "" && strings.Contains(raw, ",") {
		cfg.Filter.Projects = splitProjects(raw)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func splitProjects(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "debug")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("http.request_timeout", 3*time.Second)

	v.SetDefault("source.backend", "file")
	v.SetDefault("source.file.changes", "assets/data/gerritData.json")
	v.SetDefault("source.file.teams", "assets/data/teams.json")

	v.SetDefault("source.postgres.host", "localhost")
	v.SetDefault("source.postgres.port", 5432)
	v.SetDefault("source.postgres.user", "postgres")
	v.SetDefault("source.postgres.password", "postgres")
	v.SetDefault("source.postgres.db_name", "gerrit_charts_db")
	v.SetDefault("source.postgres.ssl_mode", "disable")
	v.SetDefault("source.postgres.migrations_dir", "db/migrations")
	v.SetDefault("source.postgres.migrate_timeout", 10*time.Second)
	v.SetDefault("source.postgres.query_timeout", 2*time.Second)
	v.SetDefault("source.postgres.max_conns", 10)
	v.SetDefault("source.postgres.min_conns", 2)

	v.SetDefault("filter.number_of_days", 365)
	v.SetDefault("filter.projects", []string{"gerald/*"})
	v.SetDefault("filter.summarize_commits", true)
}

func bindEnvs(v *viper.Viper) {
	keys := []string{
		"logging.level",
		"server.host",
		"server.port",
		"server.shutdown_timeout",
		"http.request_timeout",
		"source.backend",
		"source.file.changes",
		"source.file.teams",
		"source.postgres.host",
		"source.postgres.port",
		"source.postgres.user",
		"source.postgres.password",
		"source.postgres.db_name",
		"source.postgres.ssl_mode",
		"source.postgres.migrations_dir",
		"source.postgres.migrate_timeout",
		"source.postgres.query_timeout",
		"source.postgres.max_conns",
		"source.postgres.min_conns",
		"filter.number_of_days",
		"filter.projects",
		"filter.summarize_commits",
	}

	for _, k := range keys {
		_ = v.BindEnv(k)
	}
}
