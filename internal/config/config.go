package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Lifecycle  LifecycleConfig  `yaml:"lifecycle"`
	Statistics StatisticsConfig `yaml:"statistics"`
	Vouchers   VoucherConfig    `yaml:"vouchers"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// OriginList returns the configured origins; "*" allows any.
func (c CORSConfig) OriginList() []string {
	return splitList(c.AllowedOrigins)
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds bearer token settings. Tokens are issued by the external
// identity provider; this service only validates them.
type AuthConfig struct {
	JWTSecret  string `yaml:"jwt_secret"  env:"AUTH_JWT_SECRET"  env-required:"true"`
	JWTIssuer  string `yaml:"jwt_issuer"  env:"AUTH_JWT_ISSUER"  env-default:"voucher-identity"`
	AdminRoles string `yaml:"admin_roles" env:"AUTH_ADMIN_ROLES" env-default:"admin"`
}

// AdminRoleList returns the configured admin role names.
func (c AuthConfig) AdminRoleList() []string {
	return splitList(c.AdminRoles)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-client request limits for the admin API.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	Requests        int           `yaml:"requests"         env:"RATE_LIMIT_REQUESTS"         env-default:"120"`
	Window          time.Duration `yaml:"window"           env:"RATE_LIMIT_WINDOW"           env-default:"1m"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// LifecycleConfig tunes soft delete and restore.
type LifecycleConfig struct {
	StrictRestore bool `yaml:"strict_restore" env:"LIFECYCLE_STRICT_RESTORE" env-default:"false"`
}

// StatisticsConfig tunes the booking aggregates.
type StatisticsConfig struct {
	CountedStatus string `yaml:"counted_status"  env:"STATS_COUNTED_STATUS"  env-default:"CONFIRMED"`
	MaxRangeYears int    `yaml:"max_range_years" env:"STATS_MAX_RANGE_YEARS" env-default:"10"`
}

// VoucherConfig holds voucher business rules.
type VoucherConfig struct {
	MaxExtensionDays int           `yaml:"max_extension_days" env:"VOUCHER_MAX_EXTENSION_DAYS" env-default:"365"`
	ExpireTimeout    time.Duration `yaml:"expire_timeout"     env:"VOUCHER_EXPIRE_TIMEOUT"     env-default:"5m"`
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
