package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Currency  CurrencyConfig  `yaml:"currency"`
	Probe     ProbeConfig     `yaml:"probe"`
	Dashboard DashboardConfig `yaml:"dashboard"`
	Reminder  ReminderConfig  `yaml:"reminder"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustProxy takes the client address from X-Forwarded-For.
	TrustProxy bool `yaml:"trust_proxy" env:"SERVER_TRUST_PROXY" env-default:"false"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds the optional cache connection. An empty URL disables the cache.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig limits how often one client may trigger a probe cycle.
type RateLimitConfig struct {
	RefreshPerMinute int `yaml:"refresh_per_minute" env:"RATE_LIMIT_REFRESH_PER_MINUTE" env-default:"6"`
}

// CurrencyConfig holds exchange-rate settings.
type CurrencyConfig struct {
	RatesURL        string        `yaml:"rates_url"        env:"CURRENCY_RATES_URL"        env-default:"https://open.er-api.com/v6/latest/USD"`
	EGPFallback     string        `yaml:"egp_fallback"     env:"CURRENCY_EGP_FALLBACK"     env-default:"50"`
	RefreshInterval time.Duration `yaml:"refresh_interval" env:"CURRENCY_REFRESH_INTERVAL" env-default:"6h"`
	FetchTimeout    time.Duration `yaml:"fetch_timeout"    env:"CURRENCY_FETCH_TIMEOUT"    env-default:"10s"`
	CacheTTL        time.Duration `yaml:"cache_ttl"        env:"CURRENCY_CACHE_TTL"        env-default:"24h"`
}

// ProbeConfig holds domain status probe settings.
type ProbeConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"PROBE_TIMEOUT" env-default:"5s"`
}

// Probe modes for DashboardConfig.ProbeMode.
const (
	ProbeModeConcurrent = "concurrent"
	ProbeModeSequential = "sequential"
)

// DashboardConfig holds refresh cycle settings.
type DashboardConfig struct {
	ProbeMode        string        `yaml:"probe_mode"        env:"DASHBOARD_PROBE_MODE"        env-default:"concurrent"`
	ProbeConcurrency int           `yaml:"probe_concurrency" env:"DASHBOARD_PROBE_CONCURRENCY" env-default:"8"`
	ProbeDelay       time.Duration `yaml:"probe_delay"       env:"DASHBOARD_PROBE_DELAY"       env-default:"200ms"`
	CompletedGrace   time.Duration `yaml:"completed_grace"   env:"DASHBOARD_COMPLETED_GRACE"   env-default:"0s"`
}

// Sequential reports whether probes should run one at a time.
func (c DashboardConfig) Sequential() bool {
	return strings.EqualFold(c.ProbeMode, ProbeModeSequential)
}

// ReminderConfig holds the text-generation collaborator settings.
type ReminderConfig struct {
	Model      string        `yaml:"model"       env:"REMINDER_MODEL"       env-default:"claude-3-5-haiku-latest"`
	APIKey     string        `yaml:"api_key"     env:"REMINDER_API_KEY"`
	BaseURL    string        `yaml:"base_url"    env:"REMINDER_BASE_URL"    env-default:"https://api.anthropic.com"`
	MaxTokens  int64         `yaml:"max_tokens"  env:"REMINDER_MAX_TOKENS"  env-default:"2048"`
	Timeout    time.Duration `yaml:"timeout"     env:"REMINDER_TIMEOUT"     env-default:"60s"`
	WithinDays int           `yaml:"within_days" env:"REMINDER_WITHIN_DAYS" env-default:"30"`
}
