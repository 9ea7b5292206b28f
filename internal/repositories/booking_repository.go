package repositories

import (
	"errors"
	"sync"

	"mentorhub_backend/internal/models"
)

var ErrBookingNotFound = errors.New("booking not found")

type BookingRepository interface {
	Create(booking *models.Booking) (*models.Booking, error)
	FindByMentor(mentorID int) ([]models.Booking, error)
	FindByMentee(menteeID int) ([]models.Booking, error)
	UpdateStatus(id int, status models.BookingStatus) (*models.Booking, error)
}

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[int]*models.Booking
	nextID   int
}

func NewBookingRepository() BookingRepository {
	return &memoryBookingRepository{
		bookings: make(map[int]*models.Booking),
		nextID:   1,
	}
}

func (r *memoryBookingRepository) Create(booking *models.Booking) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *booking
	stored.ID = r.nextID
	stored.Notes = cloneStringPtr(booking.Notes)
	r.nextID++
	r.bookings[stored.ID] = &stored

	result := stored
	result.Notes = cloneStringPtr(stored.Notes)
	return &result, nil
}

func (r *memoryBookingRepository) FindByMentor(mentorID int) ([]models.Booking, error) {
	return r.findBy(func(b *models.Booking) bool { return b.MentorID == mentorID })
}

func (r *memoryBookingRepository) FindByMentee(menteeID int) ([]models.Booking, error) {
	return r.findBy(func(b *models.Booking) bool { return b.MenteeID == menteeID })
}

func (r *memoryBookingRepository) findBy(match func(*models.Booking) bool) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]models.Booking, 0)
	for id := 1; id < r.nextID; id++ {
		if booking, ok := r.bookings[id]; ok && match(booking) {
			c := *booking
			c.Notes = cloneStringPtr(booking.Notes)
			bookings = append(bookings, c)
		}
	}
	return bookings, nil
}

// UpdateStatus replaces the status under the write lock. Status is the
// only mutable field of a booking.
func (r *memoryBookingRepository) UpdateStatus(id int, status models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	booking.Status = status

	result := *booking
	result.Notes = cloneStringPtr(booking.Notes)
	return &result, nil
}
