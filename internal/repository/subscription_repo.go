package repository

import (
	"context"
	"time"

	"tradehub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

type subscriptionModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex"`
	Type      string    `gorm:"column:type"`
	StartDate time.Time `gorm:"column:start_date"`
	EndDate   time.Time `gorm:"column:end_date"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (subscriptionModel) TableName() string { return "subscriptions" }

func toDomainSubscription(m subscriptionModel) *domain.Subscription {
	return &domain.Subscription{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      domain.SubscriptionType(m.Type),
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *SubscriptionRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Subscription, error) {
	var m subscriptionModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		if tx.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainSubscription(m), nil
}

// Upsert keeps one subscription row per user; renewing replaces the dates.
func (r *SubscriptionRepository) Upsert(ctx context.Context, s *domain.Subscription) error {
	now := time.Now()
	m := subscriptionModel{
		ID:        s.ID,
		UserID:    s.UserID,
		Type:      string(s.Type),
		StartDate: s.StartDate,
		EndDate:   s.EndDate,
		Active:    s.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"type", "start_date", "end_date", "active", "updated_at",
		}),
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	saved, err := r.GetByUserID(ctx, s.UserID)
	if err != nil {
		return err
	}
	if saved != nil {
		*s = *saved
	}
	return nil
}
