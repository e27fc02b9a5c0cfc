package bootstrap

import (
	"errors"
	"fmt"

	"github.com/Lexv0lk/marketplace/internal/market/application"
	"github.com/Lexv0lk/marketplace/internal/market/domain"
	"github.com/Lexv0lk/marketplace/internal/pkg/database"
	"github.com/Lexv0lk/marketplace/internal/pkg/env"
)

const (
	defaultAuditBufferSize = 256
	minHashMemoryKiB       = 1024
	dotEnvPath             = ".env"
)

type MarketConfig struct {
	DbSettings   database.PostgresSettings
	AutoMigrate  bool
	Serializable bool

	HttpPort  string
	JwtSecret string
	LogFormat string

	Retry           application.RetryPolicy
	AuditBufferSize int

	HashMemoryKiB  int
	HashIterations int
}

func DefaultMarketConfig() MarketConfig {
	return MarketConfig{
		DbSettings: database.PostgresSettings{
			User:       "market",
			Password:   "market",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "marketplace",
			SSlEnabled: false,
		},
		AutoMigrate:     true,
		HttpPort:        ":8080",
		Retry:           application.DefaultRetryPolicy(),
		AuditBufferSize: defaultAuditBufferSize,
		HashMemoryKiB:   domain.DefaultHashMemoryKiB,
		HashIterations:  domain.DefaultHashIterations,
	}
}

// LoadMarketConfig starts from the defaults, reads an optional .env file and
// then applies environment overrides.
func LoadMarketConfig() (MarketConfig, error) {
	if err := env.LoadDotEnv(dotEnvPath); err != nil {
		return MarketConfig{}, err
	}

	cfg := DefaultMarketConfig()

	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetFromEnv(env.EnvLogFormat, &cfg.LogFormat)

	err := errors.Join(
		env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &cfg.DbSettings.SSlEnabled),
		env.TrySetBoolFromEnv(env.EnvDatabaseMigrate, &cfg.AutoMigrate),
		env.TrySetBoolFromEnv(env.EnvDatabaseSerializable, &cfg.Serializable),
		env.TrySetIntFromEnv(env.EnvRetryAttempts, &cfg.Retry.MaxAttempts),
		env.TrySetDurationFromEnv(env.EnvRetryInitialDelay, &cfg.Retry.InitialInterval),
		env.TrySetDurationFromEnv(env.EnvRetryMaxDelay, &cfg.Retry.MaxInterval),
		env.TrySetIntFromEnv(env.EnvAuditBufferSize, &cfg.AuditBufferSize),
		env.TrySetIntFromEnv(env.EnvHashMemoryKiB, &cfg.HashMemoryKiB),
		env.TrySetIntFromEnv(env.EnvHashIterations, &cfg.HashIterations),
	)
	if err != nil {
		return MarketConfig{}, err
	}

	if err := cfg.Validate(); err != nil {
		return MarketConfig{}, err
	}

	return cfg, nil
}

func (c MarketConfig) Validate() error {
	switch {
	case c.JwtSecret == "":
		return fmt.Errorf("%s must be set", env.EnvJwtSecret)
	case c.Retry.MaxAttempts < 1:
		return fmt.Errorf("%s must be at least 1", env.EnvRetryAttempts)
	case c.Retry.InitialInterval <= 0 || c.Retry.MaxInterval < c.Retry.InitialInterval:
		return fmt.Errorf("%s must be positive and not above %s", env.EnvRetryInitialDelay, env.EnvRetryMaxDelay)
	case c.AuditBufferSize < 1:
		return fmt.Errorf("%s must be at least 1", env.EnvAuditBufferSize)
	case c.HashMemoryKiB < minHashMemoryKiB:
		return fmt.Errorf("%s must be at least %d", env.EnvHashMemoryKiB, minHashMemoryKiB)
	case c.HashIterations < 1:
		return fmt.Errorf("%s must be at least 1", env.EnvHashIterations)
	}

	return nil
}
