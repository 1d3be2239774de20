package unlock

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
	rg.POST("/jobs/:id/unlock", middleware.ContractorOnly(), h.Unlock)
}

func (h *Handler) Unlock(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid job id")
		return
	}

	res, err := h.service.Unlock(c.Request.Context(), jobID, c.GetInt64("user_id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Job not found")
		case ErrConflict:
			response.Error(c, http.StatusConflict, "CONFLICT", "You have already unlocked this job")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to unlock job")
		}
		return
	}

	response.Success(c, http.StatusCreated, res)
}
