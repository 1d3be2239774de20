package matching

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Service struct {
	jobs  JobRepository
	users UserRepository
}

func NewService(jobs JobRepository, users UserRepository) *Service {
	return &Service{jobs: jobs, users: users}
}

// GetMatches loads the job and its candidate pool and ranks candidates by
// distance. An empty result is not an error.
func (s *Service) GetMatches(ctx context.Context, jobID int64, maxDistanceKm float64, limit int) ([]Match, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	candidates, err := s.users.ListActiveContractors(ctx)
	if err != nil {
		return nil, err
	}

	return FindMatches(job, candidates, maxDistanceKm, limit)
}
