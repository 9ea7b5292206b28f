// Package repositories is the in-memory record store backing all entities.
// Each repository owns one map keyed by a per-entity sequential id and
// guards it with its own mutex, since gin serves every request on its own
// goroutine. State is process-lifetime only: nothing is persisted and
// records are never deleted, so iterating ids in ascending order yields
// insertion order.
package repositories

// Store bundles the per-entity repositories. It is constructed once per
// process and passed by reference to the service layer, keeping the store
// swappable for a database-backed implementation.
type Store struct {
	Users    UserRepository
	Skills   SkillRepository
	Reviews  ReviewRepository
	Bookings BookingRepository
	Messages MessageRepository
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		Users:    NewUserRepository(),
		Skills:   NewSkillRepository(),
		Reviews:  NewReviewRepository(),
		Bookings: NewBookingRepository(),
		Messages: NewMessageRepository(),
	}
}
