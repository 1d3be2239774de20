package bid

import (
	"context"
	"time"

	"tradehub/internal/domain"
)

type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	AcceptBid(ctx context.Context, jobID, bidID, contractorID int64, amount float64, deadline time.Time) (*domain.Assignment, error)
}

type BidRepository interface {
	Create(ctx context.Context, b *domain.Bid) error
	GetByJobAndID(ctx context.Context, jobID, bidID int64) (*domain.Bid, error)
	ListByJob(ctx context.Context, jobID int64) ([]domain.Bid, error)
	HasBid(ctx context.Context, jobID, contractorID int64) (bool, error)
}

type NotificationSender interface {
	NotifyBidAccepted(ctx context.Context, contractorID, jobID, bidID int64) error
}
