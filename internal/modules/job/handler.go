package job

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
	rg.POST("/jobs", middleware.CustomerOnly(), h.Create)
	rg.GET("/jobs", middleware.AdminOnly(), h.List)
	rg.GET("/jobs/:id", h.Get)
	rg.POST("/jobs/:id/quote", middleware.AdminOnly(), h.CreateQuote)
	rg.POST("/jobs/:id/accept-quote", middleware.CustomerOnly(), h.AcceptQuote)
	rg.PATCH("/jobs/:id/status", h.UpdateStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Title is required and coordinates must be a pair")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create job")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"job": j})
}

func (h *Handler) Get(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	j, err := h.service.Get(c.Request.Context(), jobID, c.GetInt64("user_id"), domain.Role(c.GetString("role")))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load job")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	jobs, err := h.service.List(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list jobs")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"jobs": jobs})
}

func (h *Handler) CreateQuote(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.CreateQuote(c.Request.Context(), jobID, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Quote amount must be positive")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "This job can no longer be quoted")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create quote")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) AcceptQuote(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	j, err := h.service.AcceptQuote(c.Request.Context(), jobID, c.GetInt64("user_id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the job owner may accept a quote")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "This job has no pending quote")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to accept quote")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	j, err := h.service.UpdateStatus(c.Request.Context(), jobID, c.GetInt64("user_id"), domain.Role(c.GetString("role")), req.Status)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown job status")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may not set this status on this job")
		case ErrInvalidState:
			response.Error(c, http.StatusBadRequest, "INVALID_STATE", "This job cannot move to that status")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"job": j})
}
