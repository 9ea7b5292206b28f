package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestSeed_PopulatesDemoData(t *testing.T) {
	t.Parallel()

	store := NewStore()
	require.NoError(t, Seed(store))

	mentors, err := store.Users.FindMentors()
	require.NoError(t, err)
	assert.Len(t, mentors, 6)
	assert.Equal(t, "Sarah", mentors[0].FirstName)
	assert.Contains(t, mentors[0].Skills, "React")

	// Mentees follow the mentors in the id sequence.
	mentee, err := store.Users.FindByID(7)
	require.NoError(t, err)
	assert.False(t, mentee.IsMentor)

	skills, err := store.Skills.FindAll()
	require.NoError(t, err)
	assert.Len(t, skills, 18)

	reviews, err := store.Reviews.FindByMentor(1)
	require.NoError(t, err)
	assert.NotEmpty(t, reviews)
}

func TestSeed_PasswordsAreHashed(t *testing.T) {
	t.Parallel()

	store := NewStore()
	require.NoError(t, Seed(store))

	user, err := store.Users.FindByEmail("sarah@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
}
