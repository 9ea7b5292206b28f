package handlers

// AppHandlers holds all application handlers.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	UserHandler    *UserHandler
	MentorHandler  *MentorHandler
	SkillHandler   *SkillHandler
	ReviewHandler  *ReviewHandler
	BookingHandler *BookingHandler
	MessageHandler *MessageHandler
	HealthHandler  *HealthHandler
}
