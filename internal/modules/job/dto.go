package job

import "tradehub/internal/domain"

type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Budget      *float64 `json:"budget"`
	Location    string   `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	UnlockFee   *float64 `json:"unlock_fee"`
	Draft       bool     `json:"draft"`
}

type CreateQuoteRequest struct {
	Amount    float64         `json:"amount" binding:"required"`
	Notes     string          `json:"notes"`
	UnlockFee *float64        `json:"unlock_fee"`
	PayType   *domain.PayType `json:"contractor_pay_type"`
	PayRate   *float64        `json:"contractor_pay_rate"`
}

type UpdateStatusRequest struct {
	Status domain.JobStatus `json:"status" binding:"required"`
}
