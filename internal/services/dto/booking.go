package dto

import (
	"time"

	"mentorhub_backend/internal/models"
)

type CreateBookingRequest struct {
	MentorID  int       `json:"mentorId" validate:"required,min=1"`
	MenteeID  int       `json:"menteeId" validate:"required,min=1"`
	StartTime time.Time `json:"startTime" validate:"required"`
	EndTime   time.Time `json:"endTime" validate:"required"`
	Status    string    `json:"status" validate:"required,booking_status"`
	Notes     *string   `json:"notes,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
}

// BookingWithMentor / BookingWithMentee carry the counterparty summary for
// the per-user booking listings.
type BookingWithMentor struct {
	models.Booking
	Mentor *UserSummary `json:"mentor"`
}

type BookingWithMentee struct {
	models.Booking
	Mentee *UserSummary `json:"mentee"`
}
