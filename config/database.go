package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DBTypePostgres = "postgres"
	DBTypeSupabase = "supa"
	DBTypeSQLite   = "sqlite"
)

// DatabaseConfig holds the connection settings read from the environment
type DatabaseConfig struct {
	Type     string `envconfig:"DB_TYPE" default:"postgres"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USERNAME" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"portfolio_db"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	// PasswordSSMParameter names an SSM parameter that overrides Password when set.
	PasswordSSMParameter string `envconfig:"DB_PASSWORD_SSM_PARAMETER"`

	SQLitePath  string   `envconfig:"DB_SQLITE_PATH" default:"portfolio.db"`
	ReplicaDSNs []string `envconfig:"DB_REPLICA_DSNS"`

	AutoMigrate     bool `envconfig:"DB_AUTO_MIGRATE" default:"true"`
	SlowThresholdMS int  `envconfig:"DB_SLOW_THRESHOLD_MS" default:"2000"`
	MaxOpenConns    int  `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int  `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`

	Environment string `envconfig:"APP_ENV" default:"development"`
}

// LoadDatabaseConfig decodes the DB_* variables
func LoadDatabaseConfig() (DatabaseConfig, error) {
	var cfg DatabaseConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DatabaseConfig{}, fmt.Errorf("load database config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DatabaseConfig{}, err
	}
	return cfg, nil
}

func (c DatabaseConfig) Validate() error {
	switch c.Type {
	case DBTypePostgres, DBTypeSupabase, DBTypeSQLite:
		return nil
	default:
		return fmt.Errorf("unsupported DB_TYPE %q", c.Type)
	}
}

// DSN builds the postgres connection string. Supabase always requires TLS.
func (c DatabaseConfig) DSN() string {
	sslMode := c.SSLMode
	if c.Type == DBTypeSupabase {
		sslMode = "require"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, sslMode)
}

func (c DatabaseConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c DatabaseConfig) IsProduction() bool {
	return c.Environment == "production"
}

func (c DatabaseConfig) SlowThreshold() time.Duration {
	return time.Duration(c.SlowThresholdMS) * time.Millisecond
}
