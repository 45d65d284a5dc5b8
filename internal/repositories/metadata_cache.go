package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-stream-queue/internal/logger"
	"github.com/sbilibin2017/gw-stream-queue/internal/models"
)

// MetadataCacheRepository caches video metadata in Redis
type MetadataCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached metadata
}

// NewMetadataCacheRepository creates a new repository instance with the given TTL
func NewMetadataCacheRepository(client *redis.Client, expiration time.Duration) *MetadataCacheRepository {
	return &MetadataCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func metadataKey(videoID string) string {
	return fmt.Sprintf("video_metadata:%s", videoID)
}

// Get returns cached metadata for a video, or ErrCacheMiss.
func (r *MetadataCacheRepository) Get(ctx context.Context, videoID string) (*models.VideoMetadata, error) {
	key := metadataKey(videoID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("cache get", "key", key, "error", err)
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var meta models.VideoMetadata
	if err := json.Unmarshal([]byte(val), &meta); err != nil {
		logger.Log.Infow("cache decode", "key", key, "value", val, "error", err)
		return nil, err
	}

	logger.Log.Infow("cache get", "key", key, "result", meta.Title, "error", nil)
	return &meta, nil
}

// Set caches metadata for a video with the repository TTL.
func (r *MetadataCacheRepository) Set(ctx context.Context, meta models.VideoMetadata) error {
	key := metadataKey(meta.VideoID)

	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Infow("cache set", "key", key, "ttl", r.exp, "error", err)

	return err
}
