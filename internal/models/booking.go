package models

import "time"

// Booking of a mentoring session between a mentor and a mentee.
type Booking struct {
	ID        int           `json:"id"`
	MentorID  int           `json:"mentorId"`
	MenteeID  int           `json:"menteeId"`
	StartTime time.Time     `json:"startTime"`
	EndTime   time.Time     `json:"endTime"`
	Status    BookingStatus `json:"status"`
	Notes     *string       `json:"notes,omitempty"`
}
