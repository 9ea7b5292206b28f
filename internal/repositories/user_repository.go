package repositories

import (
	"errors"
	"strings"
	"sync"

	"mentorhub_backend/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	Create(user *models.User) (*models.User, error)
	FindByID(id int) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(id int, update UserUpdate) (*models.User, error)
	FindMentors() ([]models.User, error)
}

// UserUpdate is a partial profile update. Nil fields are left untouched;
// set fields replace the stored value (last write wins). Email and
// password are deliberately not updatable through this path.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Bio          *string
	ProfilePic   *string
	Position     *string
	Company      *string
	Title        *string
	HourlyRate   *int
	MonthlyRate  *int
	Availability *string
	Skills       []string
	IsMentor     *bool
}

type memoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int]*models.User
	nextID int
}

func NewUserRepository() UserRepository {
	return &memoryUserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

// Create assigns the next id and stores the record. The duplicate-email
// check runs under the same write lock as the insert, so two concurrent
// registrations cannot both pass it.
func (r *memoryUserRepository) Create(user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lower := strings.ToLower(user.Email)
	for _, existing := range r.users {
		if strings.ToLower(existing.Email) == lower {
			return nil, ErrUserAlreadyExists
		}
	}

	stored := cloneUser(user)
	stored.ID = r.nextID
	r.nextID++
	r.users[stored.ID] = stored

	return cloneUser(stored), nil
}

func (r *memoryUserRepository) FindByID(id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(user), nil
}

// FindByEmail compares case-insensitively.
func (r *memoryUserRepository) FindByEmail(email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(email)
	for id := 1; id < r.nextID; id++ {
		if user, ok := r.users[id]; ok && strings.ToLower(user.Email) == lower {
			return cloneUser(user), nil
		}
	}
	return nil, ErrUserNotFound
}

// Update merges the set fields into the stored record under the write
// lock, so the read-modify-write cannot interleave with another update.
func (r *memoryUserRepository) Update(id int, update UserUpdate) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Bio != nil {
		user.Bio = update.Bio
	}
	if update.ProfilePic != nil {
		user.ProfilePic = update.ProfilePic
	}
	if update.Position != nil {
		user.Position = update.Position
	}
	if update.Company != nil {
		user.Company = update.Company
	}
	if update.Title != nil {
		user.Title = update.Title
	}
	if update.HourlyRate != nil {
		user.HourlyRate = update.HourlyRate
	}
	if update.MonthlyRate != nil {
		user.MonthlyRate = update.MonthlyRate
	}
	if update.Availability != nil {
		user.Availability = update.Availability
	}
	if update.Skills != nil {
		user.Skills = append([]string(nil), update.Skills...)
	}
	if update.IsMentor != nil {
		user.IsMentor = *update.IsMentor
	}

	return cloneUser(user), nil
}

// FindMentors returns every mentor in insertion order.
func (r *memoryUserRepository) FindMentors() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mentors := make([]models.User, 0)
	for id := 1; id < r.nextID; id++ {
		if user, ok := r.users[id]; ok && user.IsMentor {
			mentors = append(mentors, *cloneUser(user))
		}
	}
	return mentors, nil
}

// cloneUser deep-copies a user so callers never share memory with the
// stored record.
func cloneUser(u *models.User) *models.User {
	c := *u
	c.Bio = cloneStringPtr(u.Bio)
	c.ProfilePic = cloneStringPtr(u.ProfilePic)
	c.Position = cloneStringPtr(u.Position)
	c.Company = cloneStringPtr(u.Company)
	c.Title = cloneStringPtr(u.Title)
	c.HourlyRate = cloneIntPtr(u.HourlyRate)
	c.MonthlyRate = cloneIntPtr(u.MonthlyRate)
	c.Availability = cloneStringPtr(u.Availability)
	if u.Skills != nil {
		c.Skills = append([]string(nil), u.Skills...)
	}
	return &c
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
