package domain

import "time"

type JobStatus string

const (
	JobDraft        JobStatus = "DRAFT"
	JobPendingQuote JobStatus = "PENDING_QUOTE"
	JobOpen         JobStatus = "OPEN"
	JobAssigned     JobStatus = "ASSIGNED"
	JobScheduled    JobStatus = "SCHEDULED"
	JobInProgress   JobStatus = "IN_PROGRESS"
	JobCompleted    JobStatus = "COMPLETED"
	JobCancelled    JobStatus = "CANCELLED"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobDraft, JobPendingQuote, JobOpen, JobAssigned, JobScheduled, JobInProgress, JobCompleted, JobCancelled:
		return true
	}
	return false
}

type PayType string

const (
	PayFixed  PayType = "FIXED"
	PayHourly PayType = "HOURLY"
)

type Job struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customer_id"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Budget      *float64  `json:"budget,omitempty"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	Status      JobStatus `json:"status"`

	ScheduledDate   *time.Time `json:"scheduled_date,omitempty"`
	BookingDeadline *time.Time `json:"booking_deadline,omitempty"`

	CompletedAt         *time.Time `json:"completed_at,omitempty"`
	CompletionNotes     string     `json:"completion_notes,omitempty"`
	CompletionPhotos    []string   `json:"completion_photos,omitempty"`
	ContractorSignedOff bool       `json:"contractor_signed_off"`

	UnlockFee *float64 `json:"unlock_fee,omitempty"`

	// Commercial quote fields, admin-set.
	QuoteAmount   *float64 `json:"quote_amount,omitempty"`
	QuoteNotes    string   `json:"quote_notes,omitempty"`
	QuoteAccepted bool     `json:"quote_accepted"`

	ContractorPayType *PayType `json:"contractor_pay_type,omitempty"`
	ContractorPayRate *float64 `json:"contractor_pay_rate,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer *User `json:"customer,omitempty"`
}

// HasCoordinates reports whether the job can be geo-matched.
func (j *Job) HasCoordinates() bool {
	return j.Latitude != nil && j.Longitude != nil
}

type Bid struct {
	ID           int64     `json:"id"`
	JobID        int64     `json:"job_id"`
	ContractorID int64     `json:"contractor_id"`
	Amount       float64   `json:"amount" validate:"required,gt=0"`
	Notes        string    `json:"notes,omitempty"`
	Accepted     bool      `json:"accepted"`
	CreatedAt    time.Time `json:"created_at"`
}

type Assignment struct {
	ID           int64     `json:"id"`
	JobID        int64     `json:"job_id"`
	ContractorID int64     `json:"contractor_id"`
	AssignedAt   time.Time `json:"assigned_at"`
}

type JobUnlock struct {
	ID           int64     `json:"id"`
	JobID        int64     `json:"job_id"`
	ContractorID int64     `json:"contractor_id"`
	PaidAmount   float64   `json:"paid_amount"`
	CreatedAt    time.Time `json:"created_at"`
}
