package unlock

import (
	"context"

	"tradehub/internal/domain"
)

type JobRepository interface {
	GetWithCustomer(ctx context.Context, id int64) (*domain.Job, error)
}

type UnlockRepository interface {
	Create(ctx context.Context, u *domain.JobUnlock) error
	Exists(ctx context.Context, jobID, contractorID int64) (bool, error)
}

type SubscriptionRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Subscription, error)
}
