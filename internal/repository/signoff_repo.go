package repository

import (
	"context"
	"encoding/json"
	"time"

	"tradehub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SignoffRepository struct {
	db *gorm.DB
}

func NewSignoffRepository(db *gorm.DB) *SignoffRepository {
	return &SignoffRepository{db: db}
}

type signoffModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	JobID           int64      `gorm:"column:job_id;uniqueIndex"`
	Status          string     `gorm:"column:status"`
	CustomerNotes   *string    `gorm:"column:customer_notes;type:text"`
	DisputeReason   *string    `gorm:"column:dispute_reason;type:text"`
	DisputedAt      *time.Time `gorm:"column:disputed_at"`
	SignedAt        *time.Time `gorm:"column:signed_at"`
	ResolvedAt      *time.Time `gorm:"column:resolved_at"`
	ResolutionNotes *string    `gorm:"column:resolution_notes;type:text"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (signoffModel) TableName() string { return "job_signoffs" }

func toDomainSignoff(m signoffModel) *domain.JobSignoff {
	var customerNotes, disputeReason, resolutionNotes string
	if m.CustomerNotes != nil {
		customerNotes = *m.CustomerNotes
	}
	if m.DisputeReason != nil {
		disputeReason = *m.DisputeReason
	}
	if m.ResolutionNotes != nil {
		resolutionNotes = *m.ResolutionNotes
	}

	return &domain.JobSignoff{
		ID:              m.ID,
		JobID:           m.JobID,
		Status:          domain.SignoffStatus(m.Status),
		CustomerNotes:   customerNotes,
		DisputeReason:   disputeReason,
		DisputedAt:      m.DisputedAt,
		SignedAt:        m.SignedAt,
		ResolvedAt:      m.ResolvedAt,
		ResolutionNotes: resolutionNotes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func (r *SignoffRepository) GetByJobID(ctx context.Context, jobID int64) (*domain.JobSignoff, error) {
	var m signoffModel
	tx := r.db.WithContext(ctx).Where("job_id = ?", jobID).First(&m)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainSignoff(m), nil
}

// SubmitCompletion marks the job completed and upserts its signoff back to
// PENDING, in one transaction. Re-submission reuses the single signoff row.
func (r *SignoffRepository) SubmitCompletion(ctx context.Context, jobID int64, notes string, photos []string, now time.Time) (*domain.JobSignoff, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"completed_at":          now,
			"contractor_signed_off": true,
			"status":                string(domain.JobCompleted),
			"updated_at":            now,
		}
		if notes != "" {
			updates["completion_notes"] = notes
		}
		if len(photos) > 0 {
			raw, _ := json.Marshal(photos)
			updates["completion_photos"] = string(raw)
		}
		if err := tx.Model(&jobModel{}).Where("id = ?", jobID).Updates(updates).Error; err != nil {
			return err
		}

		m := signoffModel{
			JobID:     jobID,
			Status:    string(domain.SignoffPending),
			CreatedAt: now,
			UpdatedAt: now,
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "job_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":     string(domain.SignoffPending),
				"updated_at": now,
			}),
		}).Create(&m).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByJobID(ctx, jobID)
}

func (r *SignoffRepository) Approve(ctx context.Context, jobID int64, customerNotes string, now time.Time) (*domain.JobSignoff, error) {
	updates := map[string]any{
		"status":     string(domain.SignoffApproved),
		"signed_at":  now,
		"updated_at": now,
	}
	if customerNotes != "" {
		updates["customer_notes"] = customerNotes
	}
	err := r.db.WithContext(ctx).
		Model(&signoffModel{}).
		Where("job_id = ?", jobID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.GetByJobID(ctx, jobID)
}

// Dispute flags the signoff and un-terminates the job in one transaction.
func (r *SignoffRepository) Dispute(ctx context.Context, jobID int64, reason string, now time.Time) (*domain.JobSignoff, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&signoffModel{}).
			Where("job_id = ?", jobID).
			Updates(map[string]any{
				"status":         string(domain.SignoffDisputed),
				"dispute_reason": reason,
				"disputed_at":    now,
				"updated_at":     now,
			}).Error; err != nil {
			return err
		}

		return tx.Model(&jobModel{}).
			Where("id = ?", jobID).
			Updates(map[string]any{
				"status":     string(domain.JobInProgress),
				"updated_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByJobID(ctx, jobID)
}

// Resolve closes a dispute and sets the job's final status atomically.
func (r *SignoffRepository) Resolve(ctx context.Context, jobID int64, signoffStatus domain.SignoffStatus, jobStatus domain.JobStatus, notes string, now time.Time) (*domain.JobSignoff, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{
			"status":      string(signoffStatus),
			"resolved_at": now,
			"updated_at":  now,
		}
		if notes != "" {
			updates["resolution_notes"] = notes
		}
		if err := tx.Model(&signoffModel{}).
			Where("job_id = ?", jobID).
			Updates(updates).Error; err != nil {
			return err
		}

		return tx.Model(&jobModel{}).
			Where("id = ?", jobID).
			Updates(map[string]any{
				"status":     string(jobStatus),
				"updated_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetByJobID(ctx, jobID)
}
