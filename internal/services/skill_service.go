package services

import (
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/pkg/apperrors"
)

type SkillService interface {
	ListSkills() ([]models.Skill, error)
	GetSkillsByCategory(category string) ([]models.Skill, error)
}

type skillService struct {
	skillRepo repositories.SkillRepository
}

func NewSkillService(skillRepo repositories.SkillRepository) SkillService {
	return &skillService{skillRepo: skillRepo}
}

func (s *skillService) ListSkills() ([]models.Skill, error) {
	skills, err := s.skillRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skills, nil
}

// GetSkillsByCategory returns an empty list for unknown categories; the
// endpoint never 404s.
func (s *skillService) GetSkillsByCategory(category string) ([]models.Skill, error) {
	skills, err := s.skillRepo.FindByCategory(category)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return skills, nil
}
