package repositories

import (
	"sync"

	"mentorhub_backend/internal/models"
)

type SkillRepository interface {
	Create(skill *models.Skill) (*models.Skill, error)
	FindAll() ([]models.Skill, error)
	FindByCategory(category string) ([]models.Skill, error)
}

type memorySkillRepository struct {
	mu     sync.RWMutex
	skills map[int]*models.Skill
	nextID int
}

func NewSkillRepository() SkillRepository {
	return &memorySkillRepository{
		skills: make(map[int]*models.Skill),
		nextID: 1,
	}
}

func (r *memorySkillRepository) Create(skill *models.Skill) (*models.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *skill
	stored.ID = r.nextID
	r.nextID++
	r.skills[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *memorySkillRepository) FindAll() ([]models.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skills := make([]models.Skill, 0, len(r.skills))
	for id := 1; id < r.nextID; id++ {
		if skill, ok := r.skills[id]; ok {
			skills = append(skills, *skill)
		}
	}
	return skills, nil
}

// FindByCategory matches the category label exactly.
func (r *memorySkillRepository) FindByCategory(category string) ([]models.Skill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	skills := make([]models.Skill, 0)
	for id := 1; id < r.nextID; id++ {
		if skill, ok := r.skills[id]; ok && skill.Category == category {
			skills = append(skills, *skill)
		}
	}
	return skills, nil
}
