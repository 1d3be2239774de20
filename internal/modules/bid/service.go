package bid

import (
	"context"
	"errors"
	"time"

	"tradehub/internal/domain"
	"tradehub/internal/repository"

	"gorm.io/gorm"
)

// Booking deadline granted on bid acceptance: the contractor must commit to
// a schedule within this window.
const bookingDeadlineWindow = 72 * time.Hour

type AcceptResult struct {
	Bid        *domain.Bid        `json:"bid"`
	Assignment *domain.Assignment `json:"assignment"`
	Job        *domain.Job        `json:"job"`
}

type Service struct {
	jobs   JobRepository
	bids   BidRepository
	notifs NotificationSender
}

func NewService(jobs JobRepository, bids BidRepository, notifs NotificationSender) *Service {
	return &Service{jobs: jobs, bids: bids, notifs: notifs}
}

// PlaceBid records a contractor's offer on an OPEN job. The unique
// (job_id, contractor_id) index is the backstop for the duplicate check
// under concurrent requests.
func (s *Service) PlaceBid(ctx context.Context, jobID, contractorID int64, req PlaceBidRequest) (*domain.Bid, error) {
	if req.Amount <= 0 {
		return nil, ErrValidation
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if job.Status != domain.JobOpen {
		return nil, ErrInvalidState
	}

	exists, err := s.bids.HasBid(ctx, jobID, contractorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	b := &domain.Bid{
		JobID:        jobID,
		ContractorID: contractorID,
		Amount:       req.Amount,
		Notes:        req.Notes,
	}
	if err := s.bids.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return b, nil
}

// ListBids returns a job's bids to its owner or an admin.
func (s *Service) ListBids(ctx context.Context, jobID, actorID int64, role domain.Role) ([]domain.Bid, error) {
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
	return s.bids.ListByJob(ctx, jobID)
}

// AcceptBid runs the three-write acceptance transition: bid accepted,
// assignment created, job ASSIGNED with booking deadline and FIXED pay at
// the bid amount. Authorization is checked before state.
func (s *Service) AcceptBid(ctx context.Context, jobID, bidID, actorID int64, role domain.Role) (*AcceptResult, error) {
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

	b, err := s.bids.GetByJobAndID(ctx, jobID, bidID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if job.Status != domain.JobOpen || b.Accepted {
		return nil, ErrInvalidState
	}

	deadline := time.Now().Add(bookingDeadlineWindow)
	assignment, err := s.jobs.AcceptBid(ctx, jobID, bidID, b.ContractorID, b.Amount, deadline)
	if err != nil {
		if errors.Is(err, repository.ErrStaleJob) {
			return nil, ErrInvalidState
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBidAccepted(ctx, b.ContractorID, jobID, bidID)
	}

	updated, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	b.Accepted = true
	return &AcceptResult{Bid: b, Assignment: assignment, Job: updated}, nil
}
