package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, remote endpoint, etc.)
// - default: Values common across all environments (intervals, retry ceiling, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Store    StoreConfig
	DB       DBConfig
	Redis    RedisConfig
	Remote   RemoteConfig
	Sync     SyncConfig
	Network  NetworkConfig
	Artifact ArtifactConfig
	Notify   NotifyConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port         string `envconfig:"PORT" required:"true"`
	MaxBodyBytes int64  `envconfig:"MAX_BODY_BYTES" default:"33554432"`
}

const (
	StoreBackendSQLite   = "sqlite"
	StoreBackendPostgres = "postgres"
	StoreBackendRedis    = "redis"
	StoreBackendMemory   = "memory"
)

type StoreConfig struct {
	Backend    string `envconfig:"STORE_BACKEND" default:"sqlite"`
	Key        string `envconfig:"STORE_KEY" default:"offline_data"`
	SQLitePath string `envconfig:"STORE_SQLITE_PATH" default:"data/offline.db"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"events"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"events"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type RedisConfig struct {
	URL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
}

type RemoteConfig struct {
	GraphQLURL string        `envconfig:"REMOTE_GRAPHQL_URL" required:"true"`
	Token      string        `envconfig:"REMOTE_TOKEN" default:""`
	Timeout    time.Duration `envconfig:"REMOTE_TIMEOUT" default:"15s"`
}

type SyncConfig struct {
	Interval   time.Duration `envconfig:"SYNC_INTERVAL" default:"30s"`
	MaxRetries int           `envconfig:"SYNC_MAX_RETRIES" default:"3"`
}

type NetworkConfig struct {
	InitialOnline bool          `envconfig:"NETWORK_INITIAL_ONLINE" default:"true"`
	ProbeURL      string        `envconfig:"NETWORK_PROBE_URL" default:""`
	ProbeInterval time.Duration `envconfig:"NETWORK_PROBE_INTERVAL" default:"10s"`
	ProbeTimeout  time.Duration `envconfig:"NETWORK_PROBE_TIMEOUT" default:"3s"`
}

type ArtifactConfig struct {
	Dir              string `envconfig:"ARTIFACT_DIR" default:"artifacts"`
	PublicPath       string `envconfig:"ARTIFACT_PUBLIC_PATH" default:"/artifacts"`
	PrintCommand     string `envconfig:"ARTIFACT_PRINT_COMMAND" default:""`
	QRPrintSize      int    `envconfig:"ARTIFACT_QR_PRINT_SIZE" default:"300"`
	ClipboardEnabled bool   `envconfig:"ARTIFACT_CLIPBOARD_ENABLED" default:"true"`
}

type NotifyConfig struct {
	HistorySize int `envconfig:"NOTIFY_HISTORY_SIZE" default:"100"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Sync.MaxRetries <= 0 {
		return Config{}, fmt.Errorf("SYNC_MAX_RETRIES must be positive, got %d", cfg.Sync.MaxRetries)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:         "8889", // Test port
			MaxBodyBytes: 1 << 20,
		},
		Store: StoreConfig{
			Backend: StoreBackendMemory,
			Key:     "offline_data_test",
		},
		Remote: RemoteConfig{
			GraphQLURL: "http://localhost:4000/graphql",
			Timeout:    2 * time.Second,
		},
		Sync: SyncConfig{
			Interval:   30 * time.Second,
			MaxRetries: 3,
		},
		Network: NetworkConfig{
			InitialOnline: true,
			ProbeInterval: 10 * time.Second,
			ProbeTimeout:  time.Second,
		},
		Artifact: ArtifactConfig{
			Dir:              os.TempDir(),
			PublicPath:       "/artifacts",
			QRPrintSize:      300,
			ClipboardEnabled: true,
		},
		Notify: NotifyConfig{
			HistorySize: 20,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
