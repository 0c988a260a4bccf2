package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "TASKQ"

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return load(func(v *validator.Validate, cfg *Config) error {
		return v.Struct(cfg)
	})
}

// LoadWorker loads the same sources as Load but validates only the sections
// the worker process uses: server (logging), redis, kafka and worker. The
// database and auth sections may be left unset.
func LoadWorker() (*Config, error) {
	return load(func(v *validator.Validate, cfg *Config) error {
		for _, section := range []any{cfg.Server, cfg.Redis, cfg.Kafka, cfg.Worker} {
			if err := v.Struct(section); err != nil {
				return err
			}
		}
		return nil
	})
}

func load(validate func(v *validator.Validate, cfg *Config) error) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(validator.New(), &cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("auth.token_lifetime_minutes", 60)
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("auth.clock_skew_seconds", 0)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.op_timeout_ms", 3000)

	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "request_logs")
	v.SetDefault("kafka.write_timeout_ms", 5000)

	v.SetDefault("worker.interval_ms", 1000)
	v.SetDefault("worker.batch_size", 1)
	v.SetDefault("worker.requeue_on_failure", false)

	v.SetDefault("rate_limit.auth", "")
}

// bindEnvs registers keys that have no default so that AutomaticEnv picks them up
// during Unmarshal.
func bindEnvs(v *viper.Viper) {
	for _, key := range []string{
		"database.url",
		"auth.jwt_secret",
		"redis.password",
	} {
		_ = v.BindEnv(key)
	}
}
