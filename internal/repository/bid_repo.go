package repository

import (
	"context"
	"time"

	"tradehub/internal/domain"

	"gorm.io/gorm"
)

type BidRepository struct {
	db *gorm.DB
}

func NewBidRepository(db *gorm.DB) *BidRepository {
	return &BidRepository{db: db}
}

type bidModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	JobID        int64     `gorm:"column:job_id;uniqueIndex:idx_bids_job_contractor"`
	ContractorID int64     `gorm:"column:contractor_id;uniqueIndex:idx_bids_job_contractor"`
	Amount       float64   `gorm:"column:amount"`
	Notes        *string   `gorm:"column:notes;type:text"`
	Accepted     bool      `gorm:"column:accepted"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (bidModel) TableName() string { return "bids" }

func toDomainBid(m bidModel) *domain.Bid {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}
	return &domain.Bid{
		ID:           m.ID,
		JobID:        m.JobID,
		ContractorID: m.ContractorID,
		Amount:       m.Amount,
		Notes:        notes,
		Accepted:     m.Accepted,
		CreatedAt:    m.CreatedAt,
	}
}

func toBidModel(b *domain.Bid) bidModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}
	return bidModel{
		ID:           b.ID,
		JobID:        b.JobID,
		ContractorID: b.ContractorID,
		Amount:       b.Amount,
		Notes:        notes,
		Accepted:     b.Accepted,
		CreatedAt:    b.CreatedAt,
	}
}

func (r *BidRepository) Create(ctx context.Context, b *domain.Bid) error {
	m := toBidModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBid(m)
	return nil
}

// GetByJobAndID scopes the lookup to the job so a bid id from another job
// reads as not found.
func (r *BidRepository) GetByJobAndID(ctx context.Context, jobID, bidID int64) (*domain.Bid, error) {
	var m bidModel
	tx := r.db.WithContext(ctx).Where("id = ? AND job_id = ?", bidID, jobID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBid(m), nil
}

func (r *BidRepository) ListByJob(ctx context.Context, jobID int64) ([]domain.Bid, error) {
	var ms []bidModel
	tx := r.db.WithContext(ctx).Where("job_id = ?", jobID).Order("created_at ASC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Bid, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBid(m))
	}
	return out, nil
}

func (r *BidRepository) HasBid(ctx context.Context, jobID, contractorID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bidModel{}).
		Where("job_id = ? AND contractor_id = ?", jobID, contractorID).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}
