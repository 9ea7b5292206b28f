package services

import (
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type UserService interface {
	GetUser(id int) (*models.User, error)
	UpdateUser(id int, req *dto.UpdateUserRequest) (*models.User, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(id int) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateUser applies a partial profile update; last write wins.
func (s *userService) UpdateUser(id int, req *dto.UpdateUserRequest) (*models.User, error) {
	update := repositories.UserUpdate{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Bio:          req.Bio,
		ProfilePic:   req.ProfilePicture,
		Position:     req.Position,
		Company:      req.Company,
		Title:        req.Title,
		HourlyRate:   req.HourlyRate,
		MonthlyRate:  req.MonthlyRate,
		Availability: req.Availability,
		Skills:       req.Skills,
		IsMentor:     req.IsMentor,
	}

	user, err := s.userRepo.Update(id, update)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
