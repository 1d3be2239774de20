package signoff

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
	rg.POST("/signoff/jobs/:id/complete", h.Complete)
	rg.POST("/signoff/jobs/:id/approve", h.Approve)
	rg.POST("/signoff/jobs/:id/dispute", h.Dispute)
	rg.POST("/signoff/jobs/:id/resolve", middleware.AdminOnly(), h.Resolve)
}

func (h *Handler) Complete(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.SubmitCompletion(c.Request.Context(), jobID, c.GetInt64("user_id"), domain.Role(c.GetString("role")), req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the assigned contractor or an admin may submit completion")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "This job is not in progress or scheduled")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to submit completion")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Approve(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Approve(c.Request.Context(), jobID, c.GetInt64("user_id"), domain.Role(c.GetString("role")), req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job or signoff not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the job owner or an admin may approve completion")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "The contractor has not yet submitted completion")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to approve signoff")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Dispute(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	var req DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	so, err := h.service.Dispute(c.Request.Context(), jobID, c.GetInt64("user_id"), domain.Role(c.GetString("role")), req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job or signoff not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the job owner or an admin may dispute completion")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "The contractor has not yet submitted completion")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Dispute reason must be at least 10 characters")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to open dispute")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"signoff": so})
}

func (h *Handler) Resolve(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	var req ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Resolve(c.Request.Context(), jobID, req)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job or signoff not found")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "There is no active dispute on this job")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown final status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to resolve dispute")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}
