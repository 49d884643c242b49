package cache

import (
	"context"
	"fmt"
	"time"

	"vidtube/pkg/config"

	"github.com/redis/go-redis/v9"
)

const viewMarkerTTL = 365 * 24 * time.Hour

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// ViewMarker remembers which viewers already counted a view on a video.
type ViewMarker struct {
	client *redis.Client
}

func NewViewMarker(client *redis.Client) *ViewMarker {
	return &ViewMarker{client: client}
}

// MarkViewed returns true only for the first call per (viewer, video).
func (m *ViewMarker) MarkViewed(ctx context.Context, viewerID, videoID string) (bool, error) {
	return m.client.SetNX(ctx, viewKey(viewerID, videoID), "1", viewMarkerTTL).Result()
}

func (m *ViewMarker) ClearViewed(ctx context.Context, viewerID, videoID string) error {
	return m.client.Del(ctx, viewKey(viewerID, videoID)).Err()
}

func viewKey(viewerID, videoID string) string {
	return fmt.Sprintf("video_viewed:%s:%s", videoID, viewerID)
}
