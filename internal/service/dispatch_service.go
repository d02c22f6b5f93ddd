package service

import (
	"context"
	"log/slog"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/google/uuid"
)

//go:generate mockgen -source=dispatch_service.go -destination=mocks/dispatch_service_mock.go

type SubscriberSource interface {
	Subscribers(ctx context.Context, reportID uuid.UUID) ([]uuid.UUID, error)
}

type TokenResolver interface {
	TokensFor(ctx context.Context, userIDs []uuid.UUID) ([]string, error)
}

type NotificationQueue interface {
	Enqueue(ctx context.Context, job domain.NotificationJob) error
}

// dispatchService resolves a report's subscribers to device tokens and
// emits one queue job per token. Delivery itself belongs to the push
// sender worker and the provider behind it.
type dispatchService struct {
	subscribers SubscriberSource
	tokens      TokenResolver
	queue       NotificationQueue
	logger      *slog.Logger
}

func NewDispatchService(
	subscribers SubscriberSource,
	tokens TokenResolver,
	queue NotificationQueue,
	logger *slog.Logger,
) Dispatcher {
	return &dispatchService{
		subscribers: subscribers,
		tokens:      tokens,
		queue:       queue,
		logger:      logger,
	}
}

func (s *dispatchService) Dispatch(ctx context.Context, reportID uuid.UUID, title, body string) error {
	const op = "service.Dispatch.Dispatch"

	subs, err := s.subscribers.Subscribers(ctx, reportID)
	if err != nil {
		return e.Wrap(op, err)
	}
	if len(subs) == 0 {
		return nil
	}

	// Subscribers without a registered token are skipped, not errors.
	tokens, err := s.tokens.TokensFor(ctx, subs)
	if err != nil {
		return e.Wrap(op, err)
	}

	for _, token := range tokens {
		job := domain.NotificationJob{Token: token, Title: title, Body: body}
		if err := s.queue.Enqueue(ctx, job); err != nil {
			return e.Wrap(op, err)
		}
	}

	s.logger.Info("notifications enqueued",
		slog.String("report_id", reportID.String()),
		slog.Int("subscribers", len(subs)),
		slog.Int("jobs", len(tokens)),
	)

	return nil
}
