package job

import (
	"context"

	"tradehub/internal/domain"
	"tradehub/internal/repository"
)

type JobRepository interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	GetWithCustomer(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context, limit, offset int) ([]domain.Job, error)
	SetQuote(ctx context.Context, jobID int64, p repository.QuoteParams) error
	AcceptQuote(ctx context.Context, jobID int64) error
	UpdateStatus(ctx context.Context, jobID int64, status domain.JobStatus) error
}

type UnlockRepository interface {
	Exists(ctx context.Context, jobID, contractorID int64) (bool, error)
}

type AssignmentRepository interface {
	GetByJobID(ctx context.Context, jobID int64) (*domain.Assignment, error)
}

type NotificationSender interface {
	NotifyQuoteCreated(ctx context.Context, customerID, jobID int64, amount float64) error
}
