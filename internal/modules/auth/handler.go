package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tradehub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid role or profile fields")
		case ErrEmailAlreadyExists:
			response.Error(c, http.StatusConflict, "CONFLICT", "Email already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user": UserPublic{
			ID:        res.User.ID,
			Role:      string(res.User.Role),
			Email:     res.User.Email,
			FirstName: res.User.FirstName,
			LastName:  res.User.LastName,
		},
		"access_token": res.AccessToken,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidCredentials:
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": UserPublic{
			ID:        res.User.ID,
			Role:      string(res.User.Role),
			Email:     res.User.Email,
			FirstName: res.User.FirstName,
			LastName:  res.User.LastName,
		},
		"access_token": res.AccessToken,
	})
}
