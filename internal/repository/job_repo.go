package repository

import (
	"context"
	"encoding/json"
	"time"

	"tradehub/internal/domain"

	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

type jobModel struct {
	ID          int64    `gorm:"column:id;primaryKey"`
	CustomerID  int64    `gorm:"column:customer_id;index"`
	Title       string   `gorm:"column:title"`
	Description *string  `gorm:"column:description;type:text"`
	Budget      *float64 `gorm:"column:budget"`
	Location    *string  `gorm:"column:location"`
	Latitude    *float64 `gorm:"column:latitude"`
	Longitude   *float64 `gorm:"column:longitude"`
	Status      string   `gorm:"column:status;index"`

	ScheduledDate   *time.Time `gorm:"column:scheduled_date"`
	BookingDeadline *time.Time `gorm:"column:booking_deadline"`

	CompletedAt         *time.Time `gorm:"column:completed_at"`
	CompletionNotes     *string    `gorm:"column:completion_notes;type:text"`
	CompletionPhotos    *string    `gorm:"column:completion_photos;type:text"`
	ContractorSignedOff bool       `gorm:"column:contractor_signed_off"`

	UnlockFee *float64 `gorm:"column:unlock_fee"`

	QuoteAmount   *float64 `gorm:"column:quote_amount"`
	QuoteNotes    *string  `gorm:"column:quote_notes;type:text"`
	QuoteAccepted bool     `gorm:"column:quote_accepted"`

	ContractorPayType *string  `gorm:"column:contractor_pay_type"`
	ContractorPayRate *float64 `gorm:"column:contractor_pay_rate"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (jobModel) TableName() string { return "jobs" }

func toDomainJob(m jobModel) *domain.Job {
	var description, location, completionNotes, quoteNotes string
	if m.Description != nil {
		description = *m.Description
	}
	if m.Location != nil {
		location = *m.Location
	}
	if m.CompletionNotes != nil {
		completionNotes = *m.CompletionNotes
	}
	if m.QuoteNotes != nil {
		quoteNotes = *m.QuoteNotes
	}

	var photos []string
	if m.CompletionPhotos != nil && *m.CompletionPhotos != "" {
		_ = json.Unmarshal([]byte(*m.CompletionPhotos), &photos)
	}

	var payType *domain.PayType
	if m.ContractorPayType != nil {
		v := domain.PayType(*m.ContractorPayType)
		payType = &v
	}

	return &domain.Job{
		ID:                  m.ID,
		CustomerID:          m.CustomerID,
		Title:               m.Title,
		Description:         description,
		Budget:              m.Budget,
		Location:            location,
		Latitude:            m.Latitude,
		Longitude:           m.Longitude,
		Status:              domain.JobStatus(m.Status),
		ScheduledDate:       m.ScheduledDate,
		BookingDeadline:     m.BookingDeadline,
		CompletedAt:         m.CompletedAt,
		CompletionNotes:     completionNotes,
		CompletionPhotos:    photos,
		ContractorSignedOff: m.ContractorSignedOff,
		UnlockFee:           m.UnlockFee,
		QuoteAmount:         m.QuoteAmount,
		QuoteNotes:          quoteNotes,
		QuoteAccepted:       m.QuoteAccepted,
		ContractorPayType:   payType,
		ContractorPayRate:   m.ContractorPayRate,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toJobModel(j *domain.Job) jobModel {
	var description, location, completionNotes, quoteNotes *string
	if j.Description != "" {
		v := j.Description
		description = &v
	}
	if j.Location != "" {
		v := j.Location
		location = &v
	}
	if j.CompletionNotes != "" {
		v := j.CompletionNotes
		completionNotes = &v
	}
	if j.QuoteNotes != "" {
		v := j.QuoteNotes
		quoteNotes = &v
	}

	var photos *string
	if len(j.CompletionPhotos) > 0 {
		raw, _ := json.Marshal(j.CompletionPhotos)
		v := string(raw)
		photos = &v
	}

	var payType *string
	if j.ContractorPayType != nil {
		v := string(*j.ContractorPayType)
		payType = &v
	}

	return jobModel{
		ID:                  j.ID,
		CustomerID:          j.CustomerID,
		Title:               j.Title,
		Description:         description,
		Budget:              j.Budget,
		Location:            location,
		Latitude:            j.Latitude,
		Longitude:           j.Longitude,
		Status:              string(j.Status),
		ScheduledDate:       j.ScheduledDate,
		BookingDeadline:     j.BookingDeadline,
		CompletedAt:         j.CompletedAt,
		CompletionNotes:     completionNotes,
		CompletionPhotos:    photos,
		ContractorSignedOff: j.ContractorSignedOff,
		UnlockFee:           j.UnlockFee,
		QuoteAmount:         j.QuoteAmount,
		QuoteNotes:          quoteNotes,
		QuoteAccepted:       j.QuoteAccepted,
		ContractorPayType:   payType,
		ContractorPayRate:   j.ContractorPayRate,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
	}
}

func (r *JobRepository) Create(ctx context.Context, j *domain.Job) error {
	m := toJobModel(j)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*j = *toDomainJob(m)
	return nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	var m jobModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainJob(m), nil
}

// GetWithCustomer loads the job and its owning customer.
func (r *JobRepository) GetWithCustomer(ctx context.Context, id int64) (*domain.Job, error) {
	var m jobModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	j := toDomainJob(m)

	var cm userModel
	tx = r.db.WithContext(ctx).First(&cm, m.CustomerID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	j.Customer = toDomainUser(cm)
	return j, nil
}

func (r *JobRepository) List(ctx context.Context, limit, offset int) ([]domain.Job, error) {
	var ms []jobModel
	tx := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Offset(offset).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Job, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainJob(m))
	}
	return out, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, jobID int64, status domain.JobStatus) error {
	return r.db.WithContext(ctx).
		Model(&jobModel{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now(),
		}).Error
}

type QuoteParams struct {
	Amount    float64
	Notes     string
	UnlockFee *float64
	PayType   *domain.PayType
	PayRate   *float64
}

// SetQuote records an admin quote and parks the job in PENDING_QUOTE.
func (r *JobRepository) SetQuote(ctx context.Context, jobID int64, p QuoteParams) error {
	updates := map[string]any{
		"quote_amount":   p.Amount,
		"quote_accepted": false,
		"status":         string(domain.JobPendingQuote),
		"updated_at":     time.Now(),
	}
	if p.Notes != "" {
		updates["quote_notes"] = p.Notes
	}
	if p.UnlockFee != nil {
		updates["unlock_fee"] = *p.UnlockFee
	}
	if p.PayType != nil {
		updates["contractor_pay_type"] = string(*p.PayType)
	}
	if p.PayRate != nil {
		updates["contractor_pay_rate"] = *p.PayRate
	}

	return r.db.WithContext(ctx).
		Model(&jobModel{}).
		Where("id = ?", jobID).
		Updates(updates).Error
}

// AcceptQuote flips quote_accepted and re-opens the job for bidding.
// Conditional on PENDING_QUOTE so two customers racing an admin re-quote
// cannot double-accept.
func (r *JobRepository) AcceptQuote(ctx context.Context, jobID int64) error {
	res := r.db.WithContext(ctx).
		Model(&jobModel{}).
		Where("id = ? AND status = ?", jobID, string(domain.JobPendingQuote)).
		Updates(map[string]any{
			"quote_accepted": true,
			"status":         string(domain.JobOpen),
			"updated_at":     time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleJob
	}
	return nil
}

func (r *JobRepository) Schedule(ctx context.Context, jobID int64, date time.Time) error {
	return r.db.WithContext(ctx).
		Model(&jobModel{}).
		Where("id = ?", jobID).
		Updates(map[string]any{
			"scheduled_date": date,
			"status":         string(domain.JobScheduled),
			"updated_at":     time.Now(),
		}).Error
}

// AssignDirect moves an OPEN job to ASSIGNED and creates its assignment in
// one transaction. No booking deadline is set on this path.
func (r *JobRepository) AssignDirect(ctx context.Context, jobID, contractorID int64) (*domain.Assignment, error) {
	var am assignmentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&jobModel{}).
			Where("id = ? AND status = ?", jobID, string(domain.JobOpen)).
			Updates(map[string]any{
				"status":     string(domain.JobAssigned),
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleJob
		}

		am = assignmentModel{
			JobID:        jobID,
			ContractorID: contractorID,
			AssignedAt:   time.Now(),
		}
		return tx.Create(&am).Error
	})
	if err != nil {
		return nil, err
	}
	return toDomainAssignment(am), nil
}

// AcceptBid performs the three-write acceptance transition atomically:
// bid flagged accepted, assignment created, job moved to ASSIGNED with a
// booking deadline and FIXED pay at the bid amount.
func (r *JobRepository) AcceptBid(ctx context.Context, jobID, bidID, contractorID int64, amount float64, deadline time.Time) (*domain.Assignment, error) {
	var am assignmentModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&jobModel{}).
			Where("id = ? AND status = ?", jobID, string(domain.JobOpen)).
			Updates(map[string]any{
				"status":              string(domain.JobAssigned),
				"booking_deadline":    deadline,
				"contractor_pay_type": string(domain.PayFixed),
				"contractor_pay_rate": amount,
				"updated_at":          time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStaleJob
		}

		if err := tx.Model(&bidModel{}).
			Where("id = ? AND job_id = ?", bidID, jobID).
			Update("accepted", true).Error; err != nil {
			return err
		}

		am = assignmentModel{
			JobID:        jobID,
			ContractorID: contractorID,
			AssignedAt:   time.Now(),
		}
		return tx.Create(&am).Error
	})
	if err != nil {
		return nil, err
	}
	return toDomainAssignment(am), nil
}

// ListOverdueAssigned returns ASSIGNED jobs whose booking deadline has
// passed without a schedule. Read-only; nothing reverts these automatically.
func (r *JobRepository) ListOverdueAssigned(ctx context.Context, now time.Time) ([]domain.Job, error) {
	var ms []jobModel
	tx := r.db.WithContext(ctx).
		Where("status = ? AND booking_deadline IS NOT NULL AND booking_deadline < ?",
			string(domain.JobAssigned), now).
		Order("booking_deadline ASC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Job, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainJob(m))
	}
	return out, nil
}
