package dto

// ======================
// Request DTOs
// ======================

type RegisterRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=6"`
	FirstName      string  `json:"firstName" validate:"required"`
	LastName       string  `json:"lastName" validate:"required"`
	Bio            *string `json:"bio,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty" validate:"omitempty,url"`
	Position       *string `json:"position,omitempty"`
	Company        *string `json:"company,omitempty"`
	IsMentor       bool    `json:"isMentor"`

	// Mentor-only fields, ignored for mentees by convention
	Title        *string  `json:"title,omitempty"`
	HourlyRate   *int     `json:"hourlyRate,omitempty" validate:"omitempty,min=0"`
	MonthlyRate  *int     `json:"monthlyRate,omitempty" validate:"omitempty,min=0"`
	Availability *string  `json:"availability,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is a partial profile update; nil fields stay untouched.
type UpdateUserRequest struct {
	FirstName      *string  `json:"firstName,omitempty"`
	LastName       *string  `json:"lastName,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	ProfilePicture *string  `json:"profilePicture,omitempty" validate:"omitempty,url"`
	Position       *string  `json:"position,omitempty"`
	Company        *string  `json:"company,omitempty"`
	IsMentor       *bool    `json:"isMentor,omitempty"`
	Title          *string  `json:"title,omitempty"`
	HourlyRate     *int     `json:"hourlyRate,omitempty" validate:"omitempty,min=0"`
	MonthlyRate    *int     `json:"monthlyRate,omitempty" validate:"omitempty,min=0"`
	Availability   *string  `json:"availability,omitempty"`
	Skills         []string `json:"skills,omitempty"`
}

// ======================
// Response DTOs
// ======================

// UserSummary is the embedded user shape carried inside reviews and
// bookings.
type UserSummary struct {
	ID             int     `json:"id"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Position       *string `json:"position,omitempty"`
	Company        *string `json:"company,omitempty"`
}
