package assignment

import (
	"context"
	"errors"
	"time"

	"tradehub/internal/domain"
	"tradehub/internal/repository"

	"gorm.io/gorm"
)

type AssignResult struct {
	Job        *domain.Job        `json:"job"`
	Assignment *domain.Assignment `json:"assignment"`
}

type Service struct {
	jobs        JobRepository
	users       UserRepository
	assignments AssignmentRepository
	notifs      NotificationSender
}

func NewService(jobs JobRepository, users UserRepository, assignments AssignmentRepository, notifs NotificationSender) *Service {
	return &Service{jobs: jobs, users: users, assignments: assignments, notifs: notifs}
}

// Assign is the admin direct-assignment path: OPEN job, existing contractor,
// assignment created and status flipped in one transaction. No booking
// deadline on this path.
func (s *Service) Assign(ctx context.Context, jobID, contractorID int64) (*AssignResult, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	contractor, err := s.users.GetByID(ctx, contractorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if contractor.Role != domain.RoleSubcontractor {
		return nil, ErrValidation
	}

	if job.Status != domain.JobOpen {
		return nil, ErrInvalidState
	}

	a, err := s.jobs.AssignDirect(ctx, jobID, contractorID)
	if err != nil {
		if errors.Is(err, repository.ErrStaleJob) {
			return nil, ErrInvalidState
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyJobAssigned(ctx, contractorID, jobID)
	}

	updated, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &AssignResult{Job: updated, Assignment: a}, nil
}

// Schedule sets the job's scheduled date. Admins bypass the booking
// deadline; the assigned contractor does not.
func (s *Service) Schedule(ctx context.Context, jobID, actorID int64, role domain.Role, date time.Time) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	isAdmin := role == domain.RoleAdmin
	if !isAdmin {
		a, err := s.assignments.GetByJobID(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if a == nil || a.ContractorID != actorID {
			return nil, ErrForbidden
		}
	}

	if job.Status != domain.JobAssigned && job.Status != domain.JobScheduled {
		return nil, ErrInvalidState
	}

	if !isAdmin && job.BookingDeadline != nil && time.Now().After(*job.BookingDeadline) {
		return nil, ErrDeadlineExpired
	}

	if err := s.jobs.Schedule(ctx, jobID, date); err != nil {
		return nil, err
	}
	return s.jobs.GetByID(ctx, jobID)
}
