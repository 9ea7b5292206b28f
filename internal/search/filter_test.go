package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mentorhub_backend/internal/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func fixtureMentors() []models.User {
	return []models.User{
		{
			ID: 1, FirstName: "Sarah", LastName: "Chen",
			Bio:          strPtr("Frontend mentoring for engineers in big tech."),
			Position:     strPtr("Senior Software Engineer"),
			Company:      strPtr("Google"),
			IsMentor:     true,
			MonthlyRate:  intPtr(120),
			Availability: strPtr("Weekends"),
			Skills:       []string{"React", "TypeScript", "System Design"},
		},
		{
			ID: 2, FirstName: "Alex", LastName: "Rodriguez",
			Bio:          strPtr("Backend specialist, distributed systems."),
			Position:     strPtr("Staff Engineer"),
			Company:      strPtr("Netflix"),
			IsMentor:     true,
			MonthlyRate:  intPtr(180),
			Availability: strPtr("Weekdays evenings"),
			Skills:       []string{"Java", "Kotlin", "System Design"},
		},
		{
			ID: 3, FirstName: "Priya", LastName: "Patel",
			Position:     strPtr("Engineering Manager"),
			Company:      strPtr("Shopify"),
			IsMentor:     true,
			MonthlyRate:  intPtr(150),
			Availability: strPtr("Flexible"),
			Skills:       []string{"Leadership", "Career Growth"},
		},
		{
			// No mentor profile data, still a mentor record.
			ID: 4, FirstName: "Dana", LastName: "Novak",
			IsMentor: true,
		},
		{
			ID: 7, FirstName: "Jessica", LastName: "Lee",
			Company:  strPtr("Spotify"),
			IsMentor: false,
		},
	}
}

func TestFilter_EmptyFilterReturnsAllMentors(t *testing.T) {
	t.Parallel()

	result := Filter(fixtureMentors(), models.MentorFilter{})

	assert.Len(t, result, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(result))
}

func TestFilter_ExcludesNonMentors(t *testing.T) {
	t.Parallel()

	// Jessica Lee is the only Spotify record but is not a mentor.
	result := Filter(fixtureMentors(), models.MentorFilter{Query: "spotify"})

	assert.Empty(t, result)
}

func TestFilter_QueryIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	mentors := fixtureMentors()

	result := Filter(mentors, models.MentorFilter{Query: "gOOgl"})
	assert.Equal(t, []int{1}, ids(result))

	// Full name "first last" is matched as a single string.
	result = Filter(mentors, models.MentorFilter{Query: "sarah ch"})
	assert.Equal(t, []int{1}, ids(result))

	// Bio participates too.
	result = Filter(mentors, models.MentorFilter{Query: "DISTRIBUTED"})
	assert.Equal(t, []int{2}, ids(result))
}

func TestFilter_SkillsMatchAnyCaseSensitive(t *testing.T) {
	t.Parallel()

	mentors := fixtureMentors()

	result := Filter(mentors, models.MentorFilter{Skills: []string{"React"}})
	assert.Equal(t, []int{1}, ids(result))

	// ANY semantics: one matching skill is enough.
	result = Filter(mentors, models.MentorFilter{Skills: []string{"React", "Java"}})
	assert.Equal(t, []int{1, 2}, ids(result))

	// Skill names are compared exactly.
	result = Filter(mentors, models.MentorFilter{Skills: []string{"react"}})
	assert.Empty(t, result)
}

func TestFilter_SkillsAgainstMentorWithoutSkills(t *testing.T) {
	t.Parallel()

	// A mentor with an empty skill list can never satisfy a skills filter.
	result := Filter(fixtureMentors(), models.MentorFilter{Skills: []string{"Leadership", "React", "Java"}})

	assert.Equal(t, []int{1, 2, 3}, ids(result))
}

func TestFilter_PriceBoundsAreInclusive(t *testing.T) {
	t.Parallel()

	mentors := fixtureMentors()

	result := Filter(mentors, models.MentorFilter{MinPrice: intPtr(101), MaxPrice: intPtr(200)})
	assert.Equal(t, []int{1, 2, 3}, ids(result))

	result = Filter(mentors, models.MentorFilter{MinPrice: intPtr(0), MaxPrice: intPtr(50)})
	assert.Empty(t, result)

	result = Filter(mentors, models.MentorFilter{MinPrice: intPtr(150), MaxPrice: intPtr(150)})
	assert.Equal(t, []int{3}, ids(result))
}

func TestFilter_NilRateFailsPresentPriceBound(t *testing.T) {
	t.Parallel()

	// Mentor 4 has no monthly rate; any price bound excludes them.
	result := Filter(fixtureMentors(), models.MentorFilter{MinPrice: intPtr(0)})

	assert.Equal(t, []int{1, 2, 3}, ids(result))
}

func TestFilter_AvailabilitySubstringIsCaseSensitive(t *testing.T) {
	t.Parallel()

	mentors := fixtureMentors()

	result := Filter(mentors, models.MentorFilter{Availability: "Week"})
	assert.Equal(t, []int{1, 2}, ids(result))

	result = Filter(mentors, models.MentorFilter{Availability: "weekends"})
	assert.Empty(t, result)
}

func TestFilter_ConjunctionAndOrder(t *testing.T) {
	t.Parallel()

	// All groups must pass at once; order of the input is preserved.
	result := Filter(fixtureMentors(), models.MentorFilter{
		Skills:   []string{"System Design"},
		MinPrice: intPtr(100),
		MaxPrice: intPtr(200),
	})

	assert.Equal(t, []int{1, 2}, ids(result))
}

func ids(users []models.User) []int {
	out := make([]int, 0, len(users))
	for _, u := range users {
		out = append(out, u.ID)
	}
	return out
}
