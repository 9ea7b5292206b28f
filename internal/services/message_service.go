package services

import (
	"errors"

	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type MessageService interface {
	GetConversation(user1ID, user2ID int) ([]models.Message, error)
	SendMessage(req *dto.SendMessageRequest) (*models.Message, error)
	MarkAsRead(id int) (*models.Message, error)
}

type messageService struct {
	messageRepo repositories.MessageRepository
	userRepo    repositories.UserRepository
}

func NewMessageService(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository) MessageService {
	return &messageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
	}
}

// GetConversation returns the message history between two users in both
// directions, oldest first. Unknown ids just yield an empty conversation.
func (s *messageService) GetConversation(user1ID, user2ID int) ([]models.Message, error) {
	messages, err := s.messageRepo.FindBetweenUsers(user1ID, user2ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return messages, nil
}

// SendMessage stores a message after resolving both endpoints.
func (s *messageService) SendMessage(req *dto.SendMessageRequest) (*models.Message, error) {
	if _, err := s.userRepo.FindByID(req.SenderID); err != nil {
		return nil, apperrors.ErrSenderNotFound
	}
	if _, err := s.userRepo.FindByID(req.ReceiverID); err != nil {
		return nil, apperrors.ErrReceiverNotFound
	}

	message := &models.Message{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	created, err := s.messageRepo.Create(message)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return created, nil
}

func (s *messageService) MarkAsRead(id int) (*models.Message, error) {
	message, err := s.messageRepo.MarkAsRead(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMessageNotFound) {
			return nil, apperrors.ErrMessageNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return message, nil
}
