package matching

import (
	"context"

	"tradehub/internal/domain"
)

type JobRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
}

type UserRepository interface {
	ListActiveContractors(ctx context.Context) ([]domain.User, error)
}
