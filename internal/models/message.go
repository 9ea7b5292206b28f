package models

import "time"

// Message is a direct message between two users. CreatedAt is
// server-assigned; Read starts false and can only transition to true.
type Message struct {
	ID         int       `json:"id"`
	SenderID   int       `json:"senderId"`
	ReceiverID int       `json:"receiverId"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
	Read       bool      `json:"read"`
}
