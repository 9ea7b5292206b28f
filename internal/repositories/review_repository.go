package repositories

import (
	"sync"
	"time"

	"mentorhub_backend/internal/models"
)

type ReviewRepository interface {
	Create(review *models.Review) (*models.Review, error)
	FindByMentor(mentorID int) ([]models.Review, error)
}

type memoryReviewRepository struct {
	mu      sync.RWMutex
	reviews map[int]*models.Review
	nextID  int
}

func NewReviewRepository() ReviewRepository {
	return &memoryReviewRepository{
		reviews: make(map[int]*models.Review),
		nextID:  1,
	}
}

// Create assigns the id and the creation timestamp; both are immutable
// afterwards.
func (r *memoryReviewRepository) Create(review *models.Review) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *review
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	stored.Comment = cloneStringPtr(review.Comment)
	r.nextID++
	r.reviews[stored.ID] = &stored

	result := stored
	result.Comment = cloneStringPtr(stored.Comment)
	return &result, nil
}

func (r *memoryReviewRepository) FindByMentor(mentorID int) ([]models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reviews := make([]models.Review, 0)
	for id := 1; id < r.nextID; id++ {
		if review, ok := r.reviews[id]; ok && review.MentorID == mentorID {
			c := *review
			c.Comment = cloneStringPtr(review.Comment)
			reviews = append(reviews, c)
		}
	}
	return reviews, nil
}
