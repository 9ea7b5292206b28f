package services

import (
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/search"
	"mentorhub_backend/pkg/apperrors"
)

type MentorService interface {
	ListMentors() ([]models.User, error)
	SearchMentors(filter models.MentorFilter) ([]models.User, error)
	GetMentor(id int) (*models.User, error)
}

type mentorService struct {
	userRepo repositories.UserRepository
}

func NewMentorService(userRepo repositories.UserRepository) MentorService {
	return &mentorService{userRepo: userRepo}
}

func (s *mentorService) ListMentors() ([]models.User, error) {
	mentors, err := s.userRepo.FindMentors()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return mentors, nil
}

// SearchMentors runs the filter engine over the full mentor list, keeping
// insertion order.
func (s *mentorService) SearchMentors(filter models.MentorFilter) ([]models.User, error) {
	mentors, err := s.userRepo.FindMentors()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if filter.IsZero() {
		return mentors, nil
	}
	return search.Filter(mentors, filter), nil
}

// GetMentor resolves the id and requires the record to be a mentor; an
// existing mentee id still yields not-found.
func (s *mentorService) GetMentor(id int) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrMentorNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if !user.IsMentor {
		return nil, apperrors.ErrMentorNotFound
	}
	return user, nil
}
