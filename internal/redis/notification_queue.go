package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/redis/go-redis/v9"
)

// NotificationQueue is the buffer between the dispatcher and the push
// sender worker. Jobs survive a process restart as long as redis does.
type NotificationQueue struct {
	client *redis.Client
	key    string
}

func NewNotificationQueue(client *redis.Client, key string) *NotificationQueue {
	return &NotificationQueue{client: client, key: key}
}

func (q *NotificationQueue) Enqueue(ctx context.Context, job domain.NotificationJob) error {
	if job.EnqueuedAt.IsZero() {
		job.EnqueuedAt = time.Now().UTC()
	}
	b, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *NotificationQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.NotificationJob, error) {
	var job domain.NotificationJob

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return job, e.ErrQueueEmpty
		}
		return job, err
	}
	if len(res) < 2 {
		return job, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &job); err != nil {
		return job, err
	}
	return job, nil
}
