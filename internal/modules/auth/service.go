package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tradehub/internal/domain"
	"tradehub/internal/repository"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
}

type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Register creates a user account. Admin accounts are provisioned out of
// band, never through the public endpoint.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	role := domain.Role(req.Role)
	if !role.Valid() || role == domain.RoleAdmin {
		return nil, ErrValidation
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		return nil, ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		Skills:       req.Skills,
		HourlyRate:   req.HourlyRate,
	}
	if role == domain.RoleSubcontractor {
		user.Status = domain.ContractorActive
	}

	if err := s.users.Create(ctx, user); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, AccessToken: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: user, AccessToken: token}, nil
}
