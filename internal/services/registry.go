package services

import (
	"mentorhub_backend/internal/email"
	"mentorhub_backend/internal/repositories"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	MentorService  MentorService
	SkillService   SkillService
	ReviewService  ReviewService
	BookingService BookingService
	MessageService MessageService
	EmailService   email.Provider
}

// NewServiceContainer wires every service against the shared store.
func NewServiceContainer(store *repositories.Store, emailProvider email.Provider) *ServiceContainer {
	return &ServiceContainer{
		AuthService:    NewAuthService(store.Users),
		UserService:    NewUserService(store.Users),
		MentorService:  NewMentorService(store.Users),
		SkillService:   NewSkillService(store.Skills),
		ReviewService:  NewReviewService(store.Reviews, store.Users),
		BookingService: NewBookingService(store.Bookings, store.Users, emailProvider),
		MessageService: NewMessageService(store.Messages, store.Users),
		EmailService:   emailProvider,
	}
}
