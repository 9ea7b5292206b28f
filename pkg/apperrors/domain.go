package apperrors

import (
	"net/http"
)

// Factories and predefined variables for domain errors. The HTTP mapping
// follows the public API contract: duplicate email on registration is a
// 400, not a 409.

// ErrMentorNotFound covers both an absent user id and a user that exists
// but is not a mentor; the two cases are indistinguishable to clients.
var ErrMentorNotFound = New(
	CodeNotFound,
	"mentors",
	"Mentor not found",
	http.StatusNotFound,
)

var ErrMenteeNotFound = New(
	CodeNotFound,
	"bookings",
	"Mentee not found",
	http.StatusNotFound,
)

var ErrSenderNotFound = New(
	CodeNotFound,
	"messages",
	"Sender not found",
	http.StatusNotFound,
)

var ErrReceiverNotFound = New(
	CodeNotFound,
	"messages",
	"Receiver not found",
	http.StatusNotFound,
)

var ErrBookingNotFound = New(
	CodeNotFound,
	"bookings",
	"Booking not found",
	http.StatusNotFound,
)

var ErrMessageNotFound = New(
	CodeNotFound,
	"messages",
	"Message not found",
	http.StatusNotFound,
)

var ErrUserNotFound = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// ErrEmailAlreadyExists - the registration pre-check hit a duplicate
// (emails compare case-insensitively).
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusBadRequest,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidBookingStatus - the requested status is outside the
// pending/confirmed/cancelled enum.
var ErrInvalidBookingStatus = New(
	CodeInvalidStatus,
	"bookings",
	"Invalid booking status",
	http.StatusBadRequest,
)
