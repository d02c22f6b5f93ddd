package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"net/http"
	"time"

	"log/slog"

	"github.com/codewithsreyash/CivicSetu/internal/config"
	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/internal/redis"
	"github.com/codewithsreyash/CivicSetu/pkg/e"
)

// PushSender drains the notification queue and posts each job to the
// push provider. It is the detached half of notification delivery: its
// failures never reach the operation that enqueued the job.
type PushSender struct {
	logger *slog.Logger
	cfg    config.PushConfig
	queue  *redis.NotificationQueue
	http   *http.Client
}

func NewPushSender(logger *slog.Logger, cfg config.PushConfig, q *redis.NotificationQueue) *PushSender {
	return &PushSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *PushSender) Run(ctx context.Context) {
	s.logger.Info("pushSender STARTED", slog.String("url", s.cfg.URL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("pushSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		job, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending push notification", slog.String("title", job.Title))
		s.sendWithRetry(ctx, job)
	}
}

type pushMessage struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (s *PushSender) sendWithRetry(ctx context.Context, job domain.NotificationJob) {
	const maxRetries = 3

	body, err := json.Marshal(pushMessage{To: job.Token, Title: job.Title, Body: job.Body})
	if err != nil {
		s.logger.Error("marshal push message failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create push request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("push delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
