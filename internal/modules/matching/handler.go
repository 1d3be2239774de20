package matching

import (
	"net/http"
	"strconv"

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
	rg.GET("/jobs/:id/matches", middleware.AdminOnly(), h.GetMatches)
}

func (h *Handler) GetMatches(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	maxDistance, _ := strconv.ParseFloat(c.DefaultQuery("max_distance", "0"), 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	matches, err := h.service.GetMatches(c.Request.Context(), jobID, maxDistance, limit)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case ErrInvalidLocation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Job has no location coordinates")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute matches")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"matches": matches})
}
