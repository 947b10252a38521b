package services

import (
	"bcpartners_backend/internal/auth"
	"bcpartners_backend/internal/repositories"
	"bcpartners_backend/internal/services/dto"
	"bcpartners_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(db *gorm.DB, userID string) (*dto.OperatorResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Login checks the operator's credentials and issues a bearer token.
// Unknown email and wrong password produce the same error so the endpoint
// does not leak which accounts exist.
func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}

// Me resolves the token's operator. A token whose account has been removed
// since issue is treated as an expired session, not a 404.
func (s *authService) Me(db *gorm.DB, userID string) (*dto.OperatorResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, apperrors.NewUnauthorizedError("Session is no longer valid")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.OperatorResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}, nil
}
