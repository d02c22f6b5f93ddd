package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/codewithsreyash/CivicSetu/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// DirectoryCache holds a snapshot of the department directory. The
// directory is read-mostly; the snapshot is invalidated on any mutation.
type DirectoryCache struct {
	client *goredis.Client
	key    string
}

func NewDirectoryCache(r *Redis) *DirectoryCache {
	return &DirectoryCache{
		client: r.Client,
		key:    "departments:all",
	}
}

func (c *DirectoryCache) Get(ctx context.Context) ([]*domain.Department, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var depts []*domain.Department
	if err := json.Unmarshal(data, &depts); err != nil {
		return nil, err
	}

	return depts, nil
}

func (c *DirectoryCache) Set(ctx context.Context, depts []*domain.Department, ttl time.Duration) error {
	b, err := json.Marshal(depts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *DirectoryCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
