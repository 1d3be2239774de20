package unlock

import (
	"context"
	"errors"

	"tradehub/internal/domain"
	"tradehub/internal/repository"

	"gorm.io/gorm"
)

type UnlockResult struct {
	Unlock  *domain.JobUnlock   `json:"unlock"`
	Job     *domain.Job         `json:"job"`
	Contact *domain.ContactInfo `json:"contact,omitempty"`
}

type Service struct {
	jobs          JobRepository
	unlocks       UnlockRepository
	subscriptions SubscriptionRepository
}

func NewService(jobs JobRepository, unlocks UnlockRepository, subscriptions SubscriptionRepository) *Service {
	return &Service{jobs: jobs, unlocks: unlocks, subscriptions: subscriptions}
}

// Unlock releases the job's customer contact details to the contractor,
// recording the fee paid. Active subscribers pay nothing. The recorded
// amount is not charged anywhere yet; payment capture is a separate
// concern.
func (s *Service) Unlock(ctx context.Context, jobID, contractorID int64) (*UnlockResult, error) {
	j, err := s.jobs.GetWithCustomer(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	exists, err := s.unlocks.Exists(ctx, jobID, contractorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrConflict
	}

	fee := 0.0
	sub, err := s.subscriptions.GetByUserID(ctx, contractorID)
	if err != nil {
		return nil, err
	}
	if sub == nil || !sub.IsActive() {
		if j.UnlockFee != nil {
			fee = *j.UnlockFee
		}
	}

	u := &domain.JobUnlock{
		JobID:        jobID,
		ContractorID: contractorID,
		PaidAmount:   fee,
	}
	if err := s.unlocks.Create(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	res := &UnlockResult{Unlock: u, Job: j}
	if j.Customer != nil {
		contact := j.Customer.Contact()
		res.Contact = &contact
	}
	return res, nil
}
