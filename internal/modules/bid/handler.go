package bid

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tradehub/internal/domain"
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
	rg.POST("/jobs/:id/bids", middleware.ContractorOnly(), h.PlaceBid)
	rg.GET("/jobs/:id/bids", h.ListBids)
	rg.POST("/jobs/:id/bids/:bidId/accept", h.AcceptBid)
}

func (h *Handler) PlaceBid(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.PlaceBid(c.Request.Context(), jobID, c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Bid amount must be positive")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "This job is no longer accepting bids")
		case ErrConflict:
			response.Error(c, http.StatusConflict, "CONFLICT", "You have already bid on this job")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to place bid")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"bid": b})
}

func (h *Handler) ListBids(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	bids, err := h.service.ListBids(c.Request.Context(), jobID, c.GetInt64("user_id"), domain.Role(c.GetString("role")))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the job owner or an admin may view bids")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bids")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bids": bids})
}

func (h *Handler) AcceptBid(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}
	bidID, err := strconv.ParseInt(c.Param("bidId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid bid id")
		return
	}

	res, err := h.service.AcceptBid(c.Request.Context(), jobID, bidID, c.GetInt64("user_id"), domain.Role(c.GetString("role")))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job or bid not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the job owner or an admin may accept bids")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "This job is no longer open for assignment")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to accept bid")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}
