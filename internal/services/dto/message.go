package dto

type SendMessageRequest struct {
	SenderID   int    `json:"senderId" validate:"required,min=1"`
	ReceiverID int    `json:"receiverId" validate:"required,min=1"`
	Content    string `json:"content" validate:"required"`
}
