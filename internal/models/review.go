package models

import "time"

// Review left by a mentee for a mentor. CreatedAt is server-assigned and
// immutable.
type Review struct {
	ID        int       `json:"id"`
	MentorID  int       `json:"mentorId"`
	MenteeID  int       `json:"menteeId"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
