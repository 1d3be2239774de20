package repository

import (
	"context"
	"time"

	"tradehub/internal/domain"

	"gorm.io/gorm"
)

type UnlockRepository struct {
	db *gorm.DB
}

func NewUnlockRepository(db *gorm.DB) *UnlockRepository {
	return &UnlockRepository{db: db}
}

type unlockModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	JobID        int64     `gorm:"column:job_id;uniqueIndex:idx_unlocks_job_contractor"`
	ContractorID int64     `gorm:"column:contractor_id;uniqueIndex:idx_unlocks_job_contractor"`
	PaidAmount   float64   `gorm:"column:paid_amount"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (unlockModel) TableName() string { return "job_unlocks" }

func toDomainUnlock(m unlockModel) *domain.JobUnlock {
	return &domain.JobUnlock{
		ID:           m.ID,
		JobID:        m.JobID,
		ContractorID: m.ContractorID,
		PaidAmount:   m.PaidAmount,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *UnlockRepository) Create(ctx context.Context, u *domain.JobUnlock) error {
	m := unlockModel{
		JobID:        u.JobID,
		ContractorID: u.ContractorID,
		PaidAmount:   u.PaidAmount,
		CreatedAt:    time.Now(),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUnlock(m)
	return nil
}

func (r *UnlockRepository) Exists(ctx context.Context, jobID, contractorID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&unlockModel{}).
		Where("job_id = ? AND contractor_id = ?", jobID, contractorID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
