// Package config reads runtime settings from the environment.
//
// Variables are prefixed with BOOKS_ and may also come from .env and
// .env.local files; values already present in the process environment win.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "BOOKS_"

type Config struct {
	Env      string `koanf:"env" validate:"required,oneof=development production test"`
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	Addr            string        `koanf:"addr" validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `koanf:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`

	DBDSN      string        `koanf:"db_dsn" validate:"required"`
	DBTimeout  time.Duration `koanf:"db_timeout" validate:"gt=0"`
	DBMaxConns int32         `koanf:"db_max_conns" validate:"gte=1"`

	MaxBodyBytes       int64    `koanf:"max_body_bytes" validate:"gte=1"`
	RateLimitRPS       float64  `koanf:"rate_limit_rps" validate:"gt=0"`
	RateLimitBurst     int      `koanf:"rate_limit_burst" validate:"gte=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// Default returns the settings used when a variable is not set.
func Default() Config {
	return Config{
		Env:             "development",
		LogLevel:        "info",
		Addr:            ":8080",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		DBTimeout:       3 * time.Second,
		DBMaxConns:      10,
		MaxBodyBytes:    1 << 20,
		RateLimitRPS:    20,
		RateLimitBurst:  40,
	}
}

// Load reads .env files, then the environment, and validates the result.
func Load() (Config, error) {
	loadEnvFiles()

	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load env: %w", err)
	}

	cfg := Default()
	err = k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag:           "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// IsProduction reports whether logs should be machine-readable.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}
