package assignment

import (
	"context"
	"time"

	"tradehub/internal/domain"
)

type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	AssignDirect(ctx context.Context, jobID, contractorID int64) (*domain.Assignment, error)
	Schedule(ctx context.Context, jobID int64, date time.Time) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type AssignmentRepository interface {
	GetByJobID(ctx context.Context, jobID int64) (*domain.Assignment, error)
}

type NotificationSender interface {
	NotifyJobAssigned(ctx context.Context, contractorID, jobID int64) error
}
