package subscription

import (
	"context"
	"time"

	"github.com/google/uuid"

	"tradehub/internal/domain"
)

const (
	monthlyTerm = 30 * 24 * time.Hour
	annualTerm  = 365 * 24 * time.Hour
)

type Service struct {
	subscriptions SubscriptionRepository
}

func NewService(subscriptions SubscriptionRepository) *Service {
	return &Service{subscriptions: subscriptions}
}

// Subscribe starts or renews the contractor's subscription. One row per
// user; renewing replaces the dates.
func (s *Service) Subscribe(ctx context.Context, userID int64, subType domain.SubscriptionType) (*domain.Subscription, error) {
	var term time.Duration
	switch subType {
	case domain.SubscriptionMonthly:
		term = monthlyTerm
	case domain.SubscriptionAnnual:
		term = annualTerm
	default:
		return nil, ErrValidation
	}

	now := time.Now()
	sub := &domain.Subscription{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      subType,
		StartDate: now,
		EndDate:   now.Add(term),
		Active:    true,
	}
	if err := s.subscriptions.Upsert(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *Service) GetMine(ctx context.Context, userID int64) (*domain.Subscription, error) {
	return s.subscriptions.GetByUserID(ctx, userID)
}
