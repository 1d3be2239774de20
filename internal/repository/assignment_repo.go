package repository

import (
	"context"
	"time"

	"tradehub/internal/domain"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// job_id is unique: a job has at most one assignment and re-assignment is
// not modeled.
type assignmentModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	JobID        int64     `gorm:"column:job_id;uniqueIndex"`
	ContractorID int64     `gorm:"column:contractor_id;index"`
	AssignedAt   time.Time `gorm:"column:assigned_at"`
}

func (assignmentModel) TableName() string { return "assignments" }

func toDomainAssignment(m assignmentModel) *domain.Assignment {
	return &domain.Assignment{
		ID:           m.ID,
		JobID:        m.JobID,
		ContractorID: m.ContractorID,
		AssignedAt:   m.AssignedAt,
	}
}

func (r *AssignmentRepository) GetByJobID(ctx context.Context, jobID int64) (*domain.Assignment, error) {
	var m assignmentModel
	tx := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&m)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainAssignment(m), nil
}

func (r *AssignmentRepository) CountByJobID(ctx context.Context, jobID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&assignmentModel{}).Where("job_id = ?", jobID).Count(&cnt)
	return cnt, tx.Error
}
