package subscription

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/middleware"
	"tradehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/subscriptions", middleware.ContractorOnly(), h.Subscribe)
	rg.GET("/subscriptions/me", middleware.ContractorOnly(), h.GetMine)
}

func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sub, err := h.service.Subscribe(c.Request.Context(), c.GetInt64("user_id"), req.Type)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Subscription type must be MONTHLY or ANNUAL")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create subscription")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"subscription": sub})
}

func (h *Handler) GetMine(c *gin.Context) {
	sub, err := h.service.GetMine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load subscription")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"subscription": sub})
}
