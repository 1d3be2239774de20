package assignment

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
	rg.POST("/jobs/:id/assign", middleware.AdminOnly(), h.Assign)
	rg.POST("/jobs/:id/schedule", h.Schedule)
}

func (h *Handler) Assign(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Assign(c.Request.Context(), jobID, req.ContractorID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job or contractor not found")
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "User is not a contractor")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "This job is not open for assignment")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to assign job")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) Schedule(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	job, err := h.service.Schedule(c.Request.Context(), jobID, c.GetInt64("user_id"), domain.Role(c.GetString("role")), req.ScheduledDate)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only an admin or the assigned contractor may schedule this job")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "This job is not assigned")
		case ErrDeadlineExpired:
			response.Error(c, http.StatusBadRequest, "DEADLINE_EXPIRED", "The booking deadline for this job has passed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to schedule job")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": job})
}
