package subscription

import "tradehub/internal/domain"

type SubscribeRequest struct {
	Type domain.SubscriptionType `json:"type" binding:"required"`
}
