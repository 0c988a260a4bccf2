package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	Redis     RedisConfig     `mapstructure:"redis" validate:"required"`
	Kafka     KafkaConfig     `mapstructure:"kafka" validate:"required"`
	Worker    WorkerConfig    `mapstructure:"worker" validate:"required"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig holds the connection settings of the credential store.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
	BCryptCost           int    `mapstructure:"bcrypt_cost" validate:"gte=4,lte=31"`
	// ClockSkewSeconds is the leeway applied to exp/nbf checks. Zero means exact expiry.
	ClockSkewSeconds int `mapstructure:"clock_skew_seconds" validate:"gte=0"`
}

// RedisConfig configures the per-user queue store.
type RedisConfig struct {
	Addr        string `mapstructure:"addr" validate:"required,hostname_port"`
	Password    string `mapstructure:"password"`
	DB          int    `mapstructure:"db" validate:"gte=0"`
	OpTimeoutMS int    `mapstructure:"op_timeout_ms" validate:"required,gt=0"`
}

// KafkaConfig configures the downstream log topic.
type KafkaConfig struct {
	Brokers        []string `mapstructure:"brokers" validate:"required,min=1,dive,hostname_port"`
	Topic          string   `mapstructure:"topic" validate:"required"`
	WriteTimeoutMS int      `mapstructure:"write_timeout_ms" validate:"required,gt=0"`
}

// WorkerConfig controls the pacing of the per-user worker loop.
type WorkerConfig struct {
	IntervalMS int `mapstructure:"interval_ms" validate:"required,gt=0"`
	BatchSize  int `mapstructure:"batch_size" validate:"required,gt=0"`
	// RequeueOnFailure puts an item back at the head of the queue when forwarding fails
	// instead of dropping it.
	RequeueOnFailure bool `mapstructure:"requeue_on_failure"`
}

// RateLimitConfig holds ulule/limiter formatted rates ("20-M"). Empty disables the limiter.
type RateLimitConfig struct {
	Auth string `mapstructure:"auth"`
}
