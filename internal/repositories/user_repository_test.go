package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentorhub_backend/internal/models"
)

func newTestUser(email, first, last string) *models.User {
	return &models.User{
		Email:        email,
		PasswordHash: "$2a$10$fakehashfortests",
		FirstName:    first,
		LastName:     last,
	}
}

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	first, err := repo.Create(newTestUser("a@example.com", "Ann", "Lee"))
	require.NoError(t, err)
	second, err := repo.Create(newTestUser("b@example.com", "Ben", "Ray"))
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestUserRepository_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	_, err := repo.Create(newTestUser("A@x.com", "Ann", "Lee"))
	require.NoError(t, err)

	_, err = repo.Create(newTestUser("a@x.com", "Ben", "Ray"))
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestUserRepository_FindByEmailIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	created, err := repo.Create(newTestUser("Ann.Lee@Example.com", "Ann", "Lee"))
	require.NoError(t, err)

	found, err := repo.FindByEmail("ann.lee@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_ReturnedRecordsAreDetached(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	user := newTestUser("a@example.com", "Ann", "Lee")
	user.Skills = []string{"React"}
	created, err := repo.Create(user)
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	created.FirstName = "Hacked"
	created.Skills[0] = "Hacked"

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ann", stored.FirstName)
	assert.Equal(t, []string{"React"}, stored.Skills)
}

func TestUserRepository_UpdateAppliesOnlySetFields(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	user := newTestUser("a@example.com", "Ann", "Lee")
	user.Company = strPtr("Google")
	created, err := repo.Create(user)
	require.NoError(t, err)

	isMentor := true
	updated, err := repo.Update(created.ID, UserUpdate{
		Company:     strPtr("Netflix"),
		IsMentor:    &isMentor,
		MonthlyRate: intPtr(150),
	})
	require.NoError(t, err)

	assert.Equal(t, "Ann", updated.FirstName)
	assert.Equal(t, "Netflix", *updated.Company)
	assert.True(t, updated.IsMentor)
	assert.Equal(t, 150, *updated.MonthlyRate)

	_, err = repo.Update(999, UserUpdate{Company: strPtr("Nowhere")})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_FindMentorsPreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	repo := NewUserRepository()

	for i, email := range []string{"m1@x.com", "u1@x.com", "m2@x.com", "m3@x.com"} {
		user := newTestUser(email, "User", "Test")
		user.IsMentor = i != 1
		_, err := repo.Create(user)
		require.NoError(t, err)
	}

	mentors, err := repo.FindMentors()
	require.NoError(t, err)

	ids := make([]int, 0, len(mentors))
	for _, m := range mentors {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []int{1, 3, 4}, ids)
}
