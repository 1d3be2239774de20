package domain

import "time"

type SignoffStatus string

const (
	SignoffPending  SignoffStatus = "PENDING"
	SignoffApproved SignoffStatus = "APPROVED"
	SignoffDisputed SignoffStatus = "DISPUTED"
)

// JobSignoff is the completion-approval record, one per job.
type JobSignoff struct {
	ID              int64         `json:"id"`
	JobID           int64         `json:"job_id"`
	Status          SignoffStatus `json:"status"`
	CustomerNotes   string        `json:"customer_notes,omitempty"`
	DisputeReason   string        `json:"dispute_reason,omitempty"`
	DisputedAt      *time.Time    `json:"disputed_at,omitempty"`
	SignedAt        *time.Time    `json:"signed_at,omitempty"`
	ResolvedAt      *time.Time    `json:"resolved_at,omitempty"`
	ResolutionNotes string        `json:"resolution_notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type Review struct {
	ID           int64     `json:"id"`
	JobID        int64     `json:"job_id"`
	ReviewerID   int64     `json:"reviewer_id"`
	ContractorID int64     `json:"contractor_id"`
	Rating       int       `json:"rating" validate:"required,min=1,max=5"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
