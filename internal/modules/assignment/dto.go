package assignment

import "time"

type AssignRequest struct {
	ContractorID int64 `json:"contractor_id" binding:"required"`
}

type ScheduleRequest struct {
	ScheduledDate time.Time `json:"scheduled_date" binding:"required"`
}
