package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"tradehub/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	FirstName    string    `gorm:"column:first_name"`
	LastName     string    `gorm:"column:last_name"`
	Phone        *string   `gorm:"column:phone"`
	Address      *string   `gorm:"column:address"`
	Latitude     *float64  `gorm:"column:latitude"`
	Longitude    *float64  `gorm:"column:longitude"`
	Skills       *string   `gorm:"column:skills;type:text"`
	HourlyRate   *float64  `gorm:"column:hourly_rate"`
	Rating       float64   `gorm:"column:rating"`
	IsVerified   bool      `gorm:"column:is_verified"`
	Status       *string   `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var phone, address, status string
	if m.Phone != nil {
		phone = *m.Phone
	}
	if m.Address != nil {
		address = *m.Address
	}
	if m.Status != nil {
		status = *m.Status
	}

	var skills []string
	if m.Skills != nil && *m.Skills != "" {
		_ = json.Unmarshal([]byte(*m.Skills), &skills)
	}

	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         domain.Role(m.Role),
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Phone:        phone,
		Address:      address,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		Skills:       skills,
		HourlyRate:   m.HourlyRate,
		Rating:       m.Rating,
		IsVerified:   m.IsVerified,
		Status:       domain.ContractorStatus(status),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	email := strings.TrimSpace(strings.ToLower(u.Email))

	var phone, address, status *string
	if u.Phone != "" {
		v := u.Phone
		phone = &v
	}
	if u.Address != "" {
		v := u.Address
		address = &v
	}
	if u.Status != "" {
		v := string(u.Status)
		status = &v
	}

	var skills *string
	if len(u.Skills) > 0 {
		raw, _ := json.Marshal(u.Skills)
		v := string(raw)
		skills = &v
	}

	return userModel{
		ID:           u.ID,
		Email:        email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        phone,
		Address:      address,
		Latitude:     u.Latitude,
		Longitude:    u.Longitude,
		Skills:       skills,
		HourlyRate:   u.HourlyRate,
		Rating:       u.Rating,
		IsVerified:   u.IsVerified,
		Status:       status,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	email = strings.TrimSpace(strings.ToLower(email))
	tx := r.db.WithContext(ctx).Where("email = ?", email).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

// ListActiveContractors returns the geo-matchable candidate pool: active
// contractors with a profile location.
func (r *UserRepository) ListActiveContractors(ctx context.Context) ([]domain.User, error) {
	var ms []userModel
	tx := r.db.WithContext(ctx).
		Where("role = ? AND status = ? AND latitude IS NOT NULL AND longitude IS NOT NULL",
			string(domain.RoleSubcontractor), string(domain.ContractorActive)).
		Order("id ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}
