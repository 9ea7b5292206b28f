package services

import (
	"golang.org/x/crypto/bcrypt"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates a new user. The password is stored as a bcrypt hash;
// the duplicate-email check is enforced atomically by the repository.
func (s *authService) Register(req *dto.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Bio:          req.Bio,
		ProfilePic:   req.ProfilePicture,
		Position:     req.Position,
		Company:      req.Company,
		IsMentor:     req.IsMentor,
		Title:        req.Title,
		HourlyRate:   req.HourlyRate,
		MonthlyRate:  req.MonthlyRate,
		Availability: req.Availability,
		Skills:       req.Skills,
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}
	return created, nil
}

// Login verifies the credentials against the stored hash. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *authService) Login(req *dto.LoginRequest) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
