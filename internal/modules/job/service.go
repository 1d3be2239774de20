package job

import (
	"context"
	"errors"

	"tradehub/internal/domain"
	"tradehub/internal/pkg/validator"
	"tradehub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	jobs        JobRepository
	unlocks     UnlockRepository
	assignments AssignmentRepository
	notifs      NotificationSender
}

func NewService(jobs JobRepository, unlocks UnlockRepository, assignments AssignmentRepository, notifs NotificationSender) *Service {
	return &Service{jobs: jobs, unlocks: unlocks, assignments: assignments, notifs: notifs}
}

func (s *Service) Create(ctx context.Context, customerID int64, req CreateJobRequest) (*domain.Job, error) {
	// Coordinates come as a pair or not at all.
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, ErrValidation
	}

	status := domain.JobOpen
	if req.Draft {
		status = domain.JobDraft
	}

	j := &domain.Job{
		CustomerID:  customerID,
		Title:       req.Title,
		Description: req.Description,
		Budget:      req.Budget,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		UnlockFee:   req.UnlockFee,
		Status:      status,
	}
	if errs := validator.Validate(j); errs != nil {
		return nil, ErrValidation
	}
	if err := s.jobs.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

// Get returns the job. Contractors without an unlock see it without the
// customer contact block; the unlock endpoint is the sole PII gate.
func (s *Service) Get(ctx context.Context, jobID, actorID int64, role domain.Role) (*domain.Job, error) {
	j, err := s.jobs.GetWithCustomer(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if role == domain.RoleSubcontractor {
		unlocked, err := s.unlocks.Exists(ctx, jobID, actorID)
		if err != nil {
			return nil, err
		}
		if !unlocked {
			j.Customer = nil
		}
	}
	return j, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.jobs.List(ctx, limit, offset)
}

// CreateQuote records admin commercial terms and parks the job in
// PENDING_QUOTE until the customer accepts. Re-quoting a PENDING_QUOTE job
// is allowed; that is the only way out of a quote the customer ignores.
func (s *Service) CreateQuote(ctx context.Context, jobID int64, req CreateQuoteRequest) (*domain.Job, error) {
	if req.Amount <= 0 {
		return nil, ErrValidation
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if j.Status == domain.JobCompleted || j.Status == domain.JobCancelled {
		return nil, ErrInvalidState
	}

	err = s.jobs.SetQuote(ctx, jobID, repository.QuoteParams{
		Amount:    req.Amount,
		Notes:     req.Notes,
		UnlockFee: req.UnlockFee,
		PayType:   req.PayType,
		PayRate:   req.PayRate,
	})
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyQuoteCreated(ctx, j.CustomerID, jobID, req.Amount)
	}

	return s.jobs.GetByID(ctx, jobID)
}

// AcceptQuote re-opens a PENDING_QUOTE job for bidding and assignment.
func (s *Service) AcceptQuote(ctx context.Context, jobID, actorID int64) (*domain.Job, error) {
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if j.CustomerID != actorID {
		return nil, ErrForbidden
	}
	if j.Status != domain.JobPendingQuote {
		return nil, ErrInvalidState
	}

	if err := s.jobs.AcceptQuote(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrStaleJob) {
			return nil, ErrInvalidState
		}
		return nil, err
	}
	return s.jobs.GetByID(ctx, jobID)
}

// UpdateStatus lets an admin set any valid status; the assigned contractor
// may only start work (ASSIGNED/SCHEDULED -> IN_PROGRESS).
func (s *Service) UpdateStatus(ctx context.Context, jobID, actorID int64, role domain.Role, status domain.JobStatus) (*domain.Job, error) {
	if !status.Valid() {
		return nil, ErrValidation
	}

	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if role != domain.RoleAdmin {
		a, err := s.assignments.GetByJobID(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if a == nil || a.ContractorID != actorID {
			return nil, ErrForbidden
		}
		if status != domain.JobInProgress {
			return nil, ErrForbidden
		}
		if j.Status != domain.JobAssigned && j.Status != domain.JobScheduled {
			return nil, ErrInvalidState
		}
	}

	if err := s.jobs.UpdateStatus(ctx, jobID, status); err != nil {
		return nil, err
	}
	return s.jobs.GetByID(ctx, jobID)
}
