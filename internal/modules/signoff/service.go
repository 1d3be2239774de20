package signoff

import (
	"context"
	"errors"
	"strings"
	"time"

	"tradehub/internal/domain"

	"gorm.io/gorm"
)

const minDisputeReasonLen = 10

type CompleteResult struct {
	Job     *domain.Job        `json:"job"`
	Signoff *domain.JobSignoff `json:"signoff"`
}

type ApproveResult struct {
	Signoff *domain.JobSignoff `json:"signoff"`
	Review  *domain.Review     `json:"review,omitempty"`
}

type ResolveResult struct {
	Signoff *domain.JobSignoff `json:"signoff"`
	Job     *domain.Job        `json:"job"`
}

type Service struct {
	jobs        JobRepository
	assignments AssignmentRepository
	signoffs    SignoffRepository
	reviews     ReviewRepository
	notifs      NotificationSender
}

func NewService(jobs JobRepository, assignments AssignmentRepository, signoffs SignoffRepository, reviews ReviewRepository, notifs NotificationSender) *Service {
	return &Service{jobs: jobs, assignments: assignments, signoffs: signoffs, reviews: reviews, notifs: notifs}
}

// SubmitCompletion moves a SCHEDULED/IN_PROGRESS job to COMPLETED and upserts
// its signoff to PENDING. Re-submission resets the signoff rather than
// creating a second row.
func (s *Service) SubmitCompletion(ctx context.Context, jobID, actorID int64, role domain.Role, req CompleteRequest) (*CompleteResult, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
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
	}

	if job.Status != domain.JobScheduled && job.Status != domain.JobInProgress {
		return nil, ErrInvalidState
	}

	so, err := s.signoffs.SubmitCompletion(ctx, jobID, req.Notes, req.Photos, time.Now())
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyCompletionSubmitted(ctx, job.CustomerID, jobID)
	}

	updated, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &CompleteResult{Job: updated, Signoff: so}, nil
}

// Approve accepts the contractor's completion claim. An optional rating
// creates (or updates) the customer's review of the contractor and
// recomputes the contractor's average atomically.
func (s *Service) Approve(ctx context.Context, jobID, actorID int64, role domain.Role, req ApproveRequest) (*ApproveResult, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if role != domain.RoleAdmin && job.CustomerID != actorID {
		return nil, ErrForbidden
	}

	if !job.ContractorSignedOff {
		return nil, ErrInvalidState
	}

	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, ErrValidation
	}

	so, err := s.signoffs.Approve(ctx, jobID, req.Notes, time.Now())
	if err != nil {
		return nil, err
	}
	if so == nil {
		return nil, ErrNotFound
	}

	res := &ApproveResult{Signoff: so}
	if req.Rating != nil {
		a, err := s.assignments.GetByJobID(ctx, jobID)
		if err != nil {
			return nil, err
		}
		if a != nil {
			rv := &domain.Review{
				JobID:        jobID,
				ReviewerID:   actorID,
				ContractorID: a.ContractorID,
				Rating:       *req.Rating,
				Comment:      req.Notes,
			}
			if err := s.reviews.UpsertWithRating(ctx, rv); err != nil {
				return nil, err
			}
			res.Review = rv
		}
	}
	return res, nil
}

// Dispute rejects the completion claim: the signoff turns DISPUTED and the
// job drops back to IN_PROGRESS in one transaction. Only a PENDING signoff
// can be disputed; an approved one is settled.
func (s *Service) Dispute(ctx context.Context, jobID, actorID int64, role domain.Role, req DisputeRequest) (*domain.JobSignoff, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if role != domain.RoleAdmin && job.CustomerID != actorID {
		return nil, ErrForbidden
	}

	if !job.ContractorSignedOff {
		return nil, ErrInvalidState
	}

	current, err := s.signoffs.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}
	if current.Status != domain.SignoffPending {
		return nil, ErrInvalidState
	}

	reason := strings.TrimSpace(req.Reason)
	if len(reason) < minDisputeReasonLen {
		return nil, ErrValidation
	}

	so, err := s.signoffs.Dispute(ctx, jobID, reason, time.Now())
	if err != nil {
		return nil, err
	}
	if so == nil {
		return nil, ErrNotFound
	}

	if s.notifs != nil {
		a, err := s.assignments.GetByJobID(ctx, jobID)
		if err == nil && a != nil {
			_ = s.notifs.NotifyDisputeOpened(ctx, a.ContractorID, jobID, reason)
		}
	}
	return so, nil
}

// Resolve closes a dispute. "approved" re-approves the signoff; anything
// else bounces it back to PENDING. The job lands on the explicit final
// status if given, else COMPLETED on approve and IN_PROGRESS on reject.
func (s *Service) Resolve(ctx context.Context, jobID int64, req ResolveRequest) (*ResolveResult, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	so, err := s.signoffs.GetByJobID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if so == nil {
		return nil, ErrNotFound
	}
	if so.Status != domain.SignoffDisputed {
		return nil, ErrInvalidState
	}

	approved := req.Resolution == "approved"

	signoffStatus := domain.SignoffPending
	jobStatus := domain.JobInProgress
	if approved {
		signoffStatus = domain.SignoffApproved
		jobStatus = domain.JobCompleted
	}
	if req.FinalStatus != nil {
		override := domain.JobStatus(*req.FinalStatus)
		if !override.Valid() {
			return nil, ErrValidation
		}
		jobStatus = override
	}

	resolved, err := s.signoffs.Resolve(ctx, jobID, signoffStatus, jobStatus, req.Notes, time.Now())
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		a, aerr := s.assignments.GetByJobID(ctx, jobID)
		if aerr == nil && a != nil {
			_ = s.notifs.NotifyDisputeResolved(ctx, job.CustomerID, a.ContractorID, jobID, approved)
		}
	}

	updated, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return &ResolveResult{Signoff: resolved, Job: updated}, nil
}
