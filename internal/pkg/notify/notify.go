package notify

import (
	"context"
	"log"
)

// LogSender records notification intents in the process log. Delivery
// (email/SMS/push) is handled outside this service; every module that emits
// intents does so through its own sender interface, so swapping this for a
// real transport is a wiring change in cmd/api.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) NotifyQuoteCreated(ctx context.Context, customerID, jobID int64, amount float64) error {
	log.Printf("notify intent=quote_created customer_id=%d job_id=%d amount=%.2f", customerID, jobID, amount)
	return nil
}

func (s *LogSender) NotifyBidAccepted(ctx context.Context, contractorID, jobID, bidID int64) error {
	log.Printf("notify intent=bid_accepted contractor_id=%d job_id=%d bid_id=%d", contractorID, jobID, bidID)
	return nil
}

func (s *LogSender) NotifyJobAssigned(ctx context.Context, contractorID, jobID int64) error {
	log.Printf("notify intent=job_assigned contractor_id=%d job_id=%d", contractorID, jobID)
	return nil
}

func (s *LogSender) NotifyCompletionSubmitted(ctx context.Context, customerID, jobID int64) error {
	log.Printf("notify intent=completion_submitted customer_id=%d job_id=%d", customerID, jobID)
	return nil
}

func (s *LogSender) NotifyDisputeOpened(ctx context.Context, contractorID, jobID int64, reason string) error {
	log.Printf("notify intent=dispute_opened contractor_id=%d job_id=%d reason=%q", contractorID, jobID, reason)
	return nil
}

func (s *LogSender) NotifyDisputeResolved(ctx context.Context, customerID, contractorID, jobID int64, approved bool) error {
	log.Printf("notify intent=dispute_resolved customer_id=%d contractor_id=%d job_id=%d approved=%t", customerID, contractorID, jobID, approved)
	return nil
}
