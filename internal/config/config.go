package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration shared by every binary
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
	LogFile   string `mapstructure:"log_file"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // e.g. "5m", "1h"
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // e.g. "10m", "30m"
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	// AllowedOrigins restricts CORS; empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds end-user authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
	// RequireUserToken forces swipe ingestion to carry a token whose subject is the swiping user
	RequireUserToken bool `mapstructure:"require_user_token"`
}

// AdminConfig holds shared secrets for operator endpoints
type AdminConfig struct {
	AdminKey string `mapstructure:"admin_key"`
	CronKey  string `mapstructure:"cron_key"`
}

// RedisConfig holds Redis connection configuration. An empty address disables Redis.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// NATSConfig holds NATS JetStream configuration. An empty URL disables event publishing.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// LeaderboardConfig holds leaderboard query configuration
type LeaderboardConfig struct {
	DefaultLimit int           `mapstructure:"default_limit"`
	MaxLimit     int           `mapstructure:"max_limit"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

// GamificationConfig holds the challenge the badges are evaluated against
type GamificationConfig struct {
	ChallengeKey string `mapstructure:"challenge_key"`
	WindowHours  int    `mapstructure:"window_hours"`
}

// RateLimitConfig holds the per-user swipe budget. Zero disables rate limiting.
type RateLimitConfig struct {
	SwipesPerMinute int `mapstructure:"swipes_per_minute"`
	Burst           int `mapstructure:"burst"`
}

// VendorsConfig holds third-party API configuration
type VendorsConfig struct {
	CoinGeckoURL     string `mapstructure:"coingecko_url"`
	CoinGeckoAPIKey  string `mapstructure:"coingecko_api_key"`
	FirestoreProject string `mapstructure:"firestore_project"`
	// FirestoreCredentialsFile is a service account key; empty uses application default credentials
	FirestoreCredentialsFile string        `mapstructure:"firestore_credentials_file"`
	HTTPTimeout              time.Duration `mapstructure:"http_timeout"`
}

// SchedulerConfig holds the periodic recompute configuration
type SchedulerConfig struct {
	RecomputeSpec  string `mapstructure:"recompute_spec"`
	Source         string `mapstructure:"source"`
	SeasonsBack    int    `mapstructure:"seasons_back"`
	WorkerPoolSize int    `mapstructure:"worker_pool_size"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	BaseConfig   `mapstructure:",squash"`
	Server       ServerConfig       `mapstructure:"server"`
	Database     DatabaseConfig     `mapstructure:"database"`
	Auth         AuthConfig         `mapstructure:"auth"`
	Admin        AdminConfig        `mapstructure:"admin"`
	Redis        RedisConfig        `mapstructure:"redis"`
	NATS         NATSConfig         `mapstructure:"nats"`
	Leaderboard  LeaderboardConfig  `mapstructure:"leaderboard"`
	Gamification GamificationConfig `mapstructure:"gamification"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	Vendors      VendorsConfig      `mapstructure:"vendors"`
}

// JobsConfig holds configuration for the jobs binary (seed, recompute, schedule)
type JobsConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Redis      RedisConfig     `mapstructure:"redis"`
	Vendors    VendorsConfig   `mapstructure:"vendors"`
	Scheduler  SchedulerConfig `mapstructure:"scheduler"`
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	setDatabaseDefaults(v)
	v.SetDefault("nats.stream_name", "SWIPTO_EVENTS")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "swipto-api")
	v.SetDefault("leaderboard.default_limit", 20)
	v.SetDefault("leaderboard.max_limit", 100)
	v.SetDefault("leaderboard.cache_ttl", "15s")
	v.SetDefault("gamification.challenge_key", "like_24h")
	v.SetDefault("gamification.window_hours", 24)
	v.SetDefault("rate_limit.swipes_per_minute", 120)
	v.SetDefault("rate_limit.burst", 20)
	setVendorDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}
	if cfg.Admin.AdminKey == "" {
		return nil, errors.New("admin.admin_key is required")
	}
	if cfg.Gamification.WindowHours <= 0 {
		return nil, errors.New("gamification.window_hours must be positive")
	}
	if cfg.Leaderboard.MaxLimit <= 0 || cfg.Leaderboard.DefaultLimit <= 0 {
		return nil, errors.New("leaderboard limits must be positive")
	}
	if cfg.Leaderboard.DefaultLimit > cfg.Leaderboard.MaxLimit {
		cfg.Leaderboard.DefaultLimit = cfg.Leaderboard.MaxLimit
	}

	return &cfg, nil
}

// LoadJobsConfig loads configuration for the jobs binary
func LoadJobsConfig(configFile string, envPath string) (*JobsConfig, error) {
	v := configureViper("jobs", configFile, envPath)

	setDatabaseDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("scheduler.recompute_spec", "@every 15m")
	v.SetDefault("scheduler.source", "ledger")
	v.SetDefault("scheduler.seasons_back", 1)
	v.SetDefault("scheduler.worker_pool_size", 2)
	setVendorDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg JobsConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Database.validate(); err != nil {
		return nil, err
	}
	if cfg.Scheduler.SeasonsBack < 0 {
		return nil, errors.New("scheduler.seasons_back must not be negative")
	}

	return &cfg, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
}

func setVendorDefaults(v *viper.Viper) {
	v.SetDefault("vendors.coingecko_url", "https://api.coingecko.com/api/v3")
	v.SetDefault("vendors.http_timeout", "15s")
}

// readConfig reads the config file, tolerating its absence so env-only deployments work
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func (c *DatabaseConfig) validate() error {
	if c.Host == "" {
		return errors.New("database.host is required")
	}
	if c.DBName == "" {
		return errors.New("database.dbname is required")
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("SWIPTO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars binds every known key so env vars reach Unmarshal without a config file
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		"log_file",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		"auth.require_user_token",
		// Admin
		"admin.admin_key",
		"admin.cron_key",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Leaderboard
		"leaderboard.default_limit",
		"leaderboard.max_limit",
		"leaderboard.cache_ttl",
		// Gamification
		"gamification.challenge_key",
		"gamification.window_hours",
		// Rate limit
		"rate_limit.swipes_per_minute",
		"rate_limit.burst",
		// Vendors
		"vendors.coingecko_url",
		"vendors.coingecko_api_key",
		"vendors.firestore_project",
		"vendors.firestore_credentials_file",
		"vendors.http_timeout",
		// Scheduler
		"scheduler.recompute_spec",
		"scheduler.source",
		"scheduler.seasons_back",
		"scheduler.worker_pool_size",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads dotenv files from envPath; later files override earlier ones
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
