package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "20")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_FOLDER_TTL", "30s")
	t.Setenv("NATS_URL", "nats://localhost:4222")
	t.Setenv("INGEST_BLOB_CONTAINER", "custom")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Second, cfg.Redis.FolderTTL)
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
	assert.Equal(t, "custom", cfg.Ingest.BlobContainer)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MINIO_PRESIGN_TTL", "")
	t.Setenv("NATS_SUBJECT", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 5, cfg.Database.ConnectAttempts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 15*time.Minute, cfg.MinIO.PresignTTL)
	assert.Equal(t, "appeals.representations.status", cfg.NATS.Subject)
}
