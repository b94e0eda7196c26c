package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"appealsapi/internal/model"
	"appealsapi/internal/repository"
)

const folderKeyPrefix = "appeals:folders:"

// FolderCache serves case folder sets from Redis and falls back to the
// wrapped repository on a miss. Folders never change after a case is created,
// so entries are only written, never invalidated.
type FolderCache struct {
	next   repository.FolderRepository
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

var _ repository.FolderRepository = (*FolderCache)(nil)

// NewFolderCache wraps next. A nil client makes every call a pass-through.
func NewFolderCache(next repository.FolderRepository, client *redis.Client, ttl time.Duration, logger *zap.Logger) *FolderCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FolderCache{next: next, client: client, ttl: ttl, logger: logger}
}

func folderKey(caseID int64) string {
	return fmt.Sprintf("%s%d", folderKeyPrefix, caseID)
}

// ListByCase returns the cached folder set, loading and storing it on a miss.
// Redis failures are logged and never fail the lookup.
func (c *FolderCache) ListByCase(ctx context.Context, caseID int64) ([]model.Folder, error) {
	if c.client == nil {
		return c.next.ListByCase(ctx, caseID)
	}

	raw, err := c.client.Get(ctx, folderKey(caseID)).Bytes()
	switch {
	case err == nil:
		var folders []model.Folder
		if err := json.Unmarshal(raw, &folders); err == nil {
			return folders, nil
		}
		c.logger.Warn("discarding unreadable folder cache entry", zap.Int64("case_id", caseID))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("folder cache get failed", zap.Int64("case_id", caseID), zap.Error(err))
	}

	folders, err := c.next.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	c.Prime(ctx, caseID, folders)
	return folders, nil
}

// Prime stores a known folder set, typically right after the case was created.
func (c *FolderCache) Prime(ctx context.Context, caseID int64, folders []model.Folder) {
	if c.client == nil || len(folders) == 0 {
		return
	}
	payload, err := json.Marshal(folders)
	if err != nil {
		c.logger.Warn("encode folder cache entry", zap.Int64("case_id", caseID), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, folderKey(caseID), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("folder cache set failed", zap.Int64("case_id", caseID), zap.Error(err))
	}
}

// Forget drops the entry for a case that no longer exists.
func (c *FolderCache) Forget(ctx context.Context, caseID int64) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, folderKey(caseID)).Err(); err != nil {
		c.logger.Warn("folder cache delete failed", zap.Int64("case_id", caseID), zap.Error(err))
	}
}
