package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/codewithsreyash/CivicSetu/internal/domain"
	"github.com/codewithsreyash/CivicSetu/pkg/e"

	"github.com/google/uuid"
)

//go:generate mockgen -source=subscription_service.go -destination=mocks/subscription_service_mock.go

// SubscriptionStore is the per-report subscriber set plus the device
// token registry the dispatcher resolves against.
type SubscriptionStore interface {
	Subscribe(ctx context.Context, reportID, userID uuid.UUID) error
	Unsubscribe(ctx context.Context, reportID, userID uuid.UUID) error
	IsSubscribed(ctx context.Context, reportID, userID uuid.UUID) (bool, error)
}

type TokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, token string) error
}

type subscriptionService struct {
	store  SubscriptionStore
	tokens TokenStore
	logger *slog.Logger
}

func NewSubscriptionService(store SubscriptionStore, tokens TokenStore, logger *slog.Logger) Subscriptions {
	return &subscriptionService{store: store, tokens: tokens, logger: logger}
}

// Subscribe is idempotent: subscribing twice leaves one membership.
func (s *subscriptionService) Subscribe(ctx context.Context, caller domain.Identity, reportID uuid.UUID) error {
	const op = "service.Subscription.Subscribe"

	if err := s.store.Subscribe(ctx, reportID, caller.ID); err != nil {
		return e.Wrap(op, err)
	}

	s.logger.Debug("subscribed",
		slog.String("report_id", reportID.String()),
		slog.String("user_id", caller.ID.String()),
	)
	return nil
}

// Unsubscribe of a non-subscriber is a no-op, not an error.
func (s *subscriptionService) Unsubscribe(ctx context.Context, caller domain.Identity, reportID uuid.UUID) error {
	const op = "service.Subscription.Unsubscribe"

	if err := s.store.Unsubscribe(ctx, reportID, caller.ID); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}

func (s *subscriptionService) Status(ctx context.Context, caller domain.Identity, reportID uuid.UUID) (bool, error) {
	const op = "service.Subscription.Status"

	subscribed, err := s.store.IsSubscribed(ctx, reportID, caller.ID)
	if err != nil {
		return false, e.Wrap(op, err)
	}
	return subscribed, nil
}

func (s *subscriptionService) RegisterToken(ctx context.Context, caller domain.Identity, token string) error {
	const op = "service.Subscription.RegisterToken"

	if token == "" {
		return fmt.Errorf("%s: empty token: %w", op, e.ErrInvalidInput)
	}
	if err := s.tokens.Save(ctx, caller.ID, token); err != nil {
		return e.Wrap(op, err)
	}
	return nil
}
