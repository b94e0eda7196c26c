package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
	// ConnectAttempts is how many times startup pings the database before giving up.
	ConnectAttempts int
}

// MinIOConfig holds object storage settings for the document blob store.
type MinIOConfig struct {
	Endpoint   string
	AccessKey  string
	SecretKey  string
	Bucket     string
	UseSSL     bool
	PresignTTL time.Duration
}

// RedisConfig configures the folder list cache. An empty Addr disables it.
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	FolderTTL time.Duration
}

// NATSConfig configures status change notifications. An empty URL selects the
// no-op dispatcher.
type NATSConfig struct {
	URL     string
	Stream  string
	Subject string
}

type LogConfig struct {
	Level  string
	Format string
}

// IngestConfig tunes the submission pipeline.
type IngestConfig struct {
	// BlobContainer is recorded on every document version built.
	BlobContainer string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env      string
	AppHost  string
	Port     string
	Database DatabaseConfig
	MinIO    MinIOConfig
	Redis    RedisConfig
	NATS     NATSConfig
	Log      LogConfig
	Ingest   IngestConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Real environment variables take precedence over defaults.
func Load() *AppConfig {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	return &AppConfig{
		Env:     v.GetString("APP_ENV"),
		AppHost: v.GetString("APP_HOST"),
		Port:    v.GetString("PORT"),
		Database: DatabaseConfig{
			Host:               v.GetString("DB_HOST"),
			Port:               v.GetString("DB_PORT"),
			User:               v.GetString("DB_USER"),
			Password:           v.GetString("DB_PASSWORD"),
			Name:               v.GetString("DB_NAME"),
			SSLMode:            v.GetString("DB_SSLMODE"),
			MaxOpenConns:       v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:       v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetimeSec: v.GetInt("DB_CONN_MAX_LIFETIME_SEC"),
			ConnectAttempts:    v.GetInt("DB_CONNECT_ATTEMPTS"),
		},
		MinIO: MinIOConfig{
			Endpoint:   v.GetString("MINIO_ENDPOINT"),
			AccessKey:  v.GetString("MINIO_ACCESS_KEY"),
			SecretKey:  v.GetString("MINIO_SECRET_KEY"),
			Bucket:     v.GetString("MINIO_BUCKET"),
			UseSSL:     v.GetBool("MINIO_USE_SSL"),
			PresignTTL: v.GetDuration("MINIO_PRESIGN_TTL"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("REDIS_ADDR"),
			Password:  v.GetString("REDIS_PASSWORD"),
			DB:        v.GetInt("REDIS_DB"),
			FolderTTL: v.GetDuration("REDIS_FOLDER_TTL"),
		},
		NATS: NATSConfig{
			URL:     v.GetString("NATS_URL"),
			Stream:  v.GetString("NATS_STREAM"),
			Subject: v.GetString("NATS_SUBJECT"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Ingest: IngestConfig{
			BlobContainer: v.GetString("INGEST_BLOB_CONTAINER"),
		},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_HOST", "localhost:8080")
	v.SetDefault("PORT", "8080")

	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_SEC", 300)
	v.SetDefault("DB_CONNECT_ATTEMPTS", 5)

	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MINIO_PRESIGN_TTL", "15m")

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_FOLDER_TTL", "10m")

	v.SetDefault("NATS_STREAM", "APPEALS_REPRESENTATIONS")
	v.SetDefault("NATS_SUBJECT", "appeals.representations.status")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("INGEST_BLOB_CONTAINER", "appeal-documents")
}
