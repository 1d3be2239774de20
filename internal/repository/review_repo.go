package repository

import (
	"context"
	"time"

	"tradehub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	JobID        int64     `gorm:"column:job_id;uniqueIndex:idx_reviews_job_reviewer"`
	ReviewerID   int64     `gorm:"column:reviewer_id;uniqueIndex:idx_reviews_job_reviewer"`
	ContractorID int64     `gorm:"column:contractor_id;index"`
	Rating       int       `gorm:"column:rating"`
	Comment      *string   `gorm:"column:comment;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}
	return &domain.Review{
		ID:           m.ID,
		JobID:        m.JobID,
		ReviewerID:   m.ReviewerID,
		ContractorID: m.ContractorID,
		Rating:       m.Rating,
		Comment:      comment,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// UpsertWithRating writes the review and recomputes the contractor's average
// rating inside one transaction, so concurrent approvals cannot interleave
// the read-aggregate-write.
func (r *ReviewRepository) UpsertWithRating(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()

		var comment *string
		if rv.Comment != "" {
			v := rv.Comment
			comment = &v
		}
		m := reviewModel{
			JobID:        rv.JobID,
			ReviewerID:   rv.ReviewerID,
			ContractorID: rv.ContractorID,
			Rating:       rv.Rating,
			Comment:      comment,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "job_id"}, {Name: "reviewer_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rating":     rv.Rating,
				"comment":    rv.Comment,
				"updated_at": now,
			}),
		}).Create(&m).Error; err != nil {
			return err
		}

		var avg float64
		if err := tx.Raw(
			"SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE contractor_id = ?",
			rv.ContractorID,
		).Scan(&avg).Error; err != nil {
			return err
		}

		if err := tx.Model(&userModel{}).
			Where("id = ?", rv.ContractorID).
			Updates(map[string]any{
				"rating":     avg,
				"updated_at": now,
			}).Error; err != nil {
			return err
		}

		saved := m
		if err := tx.Where("job_id = ? AND reviewer_id = ?", rv.JobID, rv.ReviewerID).First(&saved).Error; err != nil {
			return err
		}
		*rv = *toDomainReview(saved)
		return nil
	})
}

func (r *ReviewRepository) ListByContractor(ctx context.Context, contractorID int64) ([]domain.Review, error) {
	var ms []reviewModel
	tx := r.db.WithContext(ctx).Where("contractor_id = ?", contractorID).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Review, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
