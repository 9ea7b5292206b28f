package services

import (
	"errors"
	"fmt"

	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/logger"
	"mentorhub_backend/internal/models"
	"mentorhub_backend/internal/repositories"
	"mentorhub_backend/internal/services/dto"
	"mentorhub_backend/pkg/apperrors"
)

type BookingService interface {
	CreateBooking(req *dto.CreateBookingRequest) (*models.Booking, error)
	GetMenteeBookings(menteeID int) ([]dto.BookingWithMentor, error)
	GetMentorBookings(mentorID int) ([]dto.BookingWithMentee, error)
	UpdateStatus(id int, status string) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo   repositories.BookingRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewBookingService(bookingRepo repositories.BookingRepository, userRepo repositories.UserRepository, emailProvider email.Provider) BookingService {
	return &bookingService{
		bookingRepo:   bookingRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

// CreateBooking stores a session booking after resolving both parties.
// The mentor side must actually be a mentor; the mentee side only has to
// exist. The mentor gets an email notification out of band.
func (s *bookingService) CreateBooking(req *dto.CreateBookingRequest) (*models.Booking, error) {
	mentor, err := s.userRepo.FindByID(req.MentorID)
	if err != nil || !mentor.IsMentor {
		return nil, apperrors.ErrMentorNotFound
	}

	mentee, err := s.userRepo.FindByID(req.MenteeID)
	if err != nil {
		return nil, apperrors.ErrMenteeNotFound
	}

	booking := &models.Booking{
		MentorID:  req.MentorID,
		MenteeID:  req.MenteeID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    models.BookingStatus(req.Status),
		Notes:     req.Notes,
	}

	created, err := s.bookingRepo.Create(booking)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	go s.notifyBookingCreated(created, mentor, mentee)

	return created, nil
}

func (s *bookingService) GetMenteeBookings(menteeID int) ([]dto.BookingWithMentor, error) {
	bookings, err := s.bookingRepo.FindByMentee(menteeID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	enriched := make([]dto.BookingWithMentor, 0, len(bookings))
	for _, booking := range bookings {
		enriched = append(enriched, dto.BookingWithMentor{
			Booking: booking,
			Mentor:  userSummary(s.userRepo, booking.MentorID),
		})
	}
	return enriched, nil
}

func (s *bookingService) GetMentorBookings(mentorID int) ([]dto.BookingWithMentee, error) {
	bookings, err := s.bookingRepo.FindByMentor(mentorID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	enriched := make([]dto.BookingWithMentee, 0, len(bookings))
	for _, booking := range bookings {
		enriched = append(enriched, dto.BookingWithMentee{
			Booking: booking,
			Mentee:  userSummary(s.userRepo, booking.MenteeID),
		})
	}
	return enriched, nil
}

// UpdateStatus transitions a booking to a new lifecycle status. The mentee
// is notified when the mentor confirms or cancels.
func (s *bookingService) UpdateStatus(id int, status string) (*models.Booking, error) {
	next := models.BookingStatus(status)
	if !next.IsValid() {
		return nil, apperrors.ErrInvalidBookingStatus
	}

	updated, err := s.bookingRepo.UpdateStatus(id, next)
	if err != nil {
		if errors.Is(err, repositories.ErrBookingNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	go s.notifyStatusChanged(updated)

	return updated, nil
}

func (s *bookingService) notifyBookingCreated(booking *models.Booking, mentor, mentee *models.User) {
	msg := &email.Email{
		To:      []string{mentor.Email},
		Subject: "New session booking",
		Body: fmt.Sprintf(
			"Hi %s,\n\n%s booked a session with you from %s to %s.\n\nLog in to confirm or cancel the booking.",
			mentor.FirstName, mentee.FullName(),
			booking.StartTime.Format("Jan 2, 2006 15:04"),
			booking.EndTime.Format("Jan 2, 2006 15:04"),
		),
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.WithError(err).Warn("failed to send booking notification", "booking_id", booking.ID, "mentor_id", mentor.ID)
	}
}

func (s *bookingService) notifyStatusChanged(booking *models.Booking) {
	mentee, err := s.userRepo.FindByID(booking.MenteeID)
	if err != nil {
		return
	}

	msg := &email.Email{
		To:      []string{mentee.Email},
		Subject: fmt.Sprintf("Your booking is %s", booking.Status),
		Body: fmt.Sprintf(
			"Hi %s,\n\nYour session on %s is now %s.",
			mentee.FirstName,
			booking.StartTime.Format("Jan 2, 2006 15:04"),
			booking.Status,
		),
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.WithError(err).Warn("failed to send booking status notification", "booking_id", booking.ID, "mentee_id", mentee.ID)
	}
}
