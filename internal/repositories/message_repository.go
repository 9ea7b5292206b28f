package repositories

import (
	"errors"
	"sort"
	"sync"
	"time"

	"mentorhub_backend/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

type MessageRepository interface {
	Create(message *models.Message) (*models.Message, error)
	FindBetweenUsers(user1ID, user2ID int) ([]models.Message, error)
	MarkAsRead(id int) (*models.Message, error)
}

type memoryMessageRepository struct {
	mu       sync.RWMutex
	messages map[int]*models.Message
	nextID   int
}

func NewMessageRepository() MessageRepository {
	return &memoryMessageRepository{
		messages: make(map[int]*models.Message),
		nextID:   1,
	}
}

// Create assigns the id and timestamp and forces the read flag to false.
func (r *memoryMessageRepository) Create(message *models.Message) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *message
	stored.ID = r.nextID
	stored.CreatedAt = time.Now().UTC()
	stored.Read = false
	r.nextID++
	r.messages[stored.ID] = &stored

	result := stored
	return &result, nil
}

// FindBetweenUsers returns the conversation in both directions, sorted
// ascending by creation time.
func (r *memoryMessageRepository) FindBetweenUsers(user1ID, user2ID int) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]models.Message, 0)
	for id := 1; id < r.nextID; id++ {
		m, ok := r.messages[id]
		if !ok {
			continue
		}
		if (m.SenderID == user1ID && m.ReceiverID == user2ID) ||
			(m.SenderID == user2ID && m.ReceiverID == user1ID) {
			messages = append(messages, *m)
		}
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

// MarkAsRead flips the read flag to true; there is no way back.
func (r *memoryMessageRepository) MarkAsRead(id int) (*models.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	message, ok := r.messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	message.Read = true

	result := *message
	return &result, nil
}
