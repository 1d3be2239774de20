package subscription

import (
	"context"

	"tradehub/internal/domain"
)

type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Subscription, error)
	Upsert(ctx context.Context, s *domain.Subscription) error
}
