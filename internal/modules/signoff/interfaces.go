package signoff

import (
	"context"
	"time"

	"tradehub/internal/domain"
)

type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
}

type AssignmentRepository interface {
	GetByJobID(ctx context.Context, jobID int64) (*domain.Assignment, error)
}

type SignoffRepository interface {
	GetByJobID(ctx context.Context, jobID int64) (*domain.JobSignoff, error)
	SubmitCompletion(ctx context.Context, jobID int64, notes string, photos []string, now time.Time) (*domain.JobSignoff, error)
	Approve(ctx context.Context, jobID int64, customerNotes string, now time.Time) (*domain.JobSignoff, error)
	Dispute(ctx context.Context, jobID int64, reason string, now time.Time) (*domain.JobSignoff, error)
	Resolve(ctx context.Context, jobID int64, signoffStatus domain.SignoffStatus, jobStatus domain.JobStatus, notes string, now time.Time) (*domain.JobSignoff, error)
}

type ReviewRepository interface {
	UpsertWithRating(ctx context.Context, rv *domain.Review) error
}

type NotificationSender interface {
	NotifyCompletionSubmitted(ctx context.Context, customerID, jobID int64) error
	NotifyDisputeOpened(ctx context.Context, contractorID, jobID int64, reason string) error
	NotifyDisputeResolved(ctx context.Context, customerID, contractorID, jobID int64, approved bool) error
}
