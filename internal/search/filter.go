// Package search implements the mentor filter engine: a pure function over
// an already-fetched mentor slice, so it can back both the search endpoint
// and any client that prefers to re-filter a cached list.
package search

import (
	"strings"

	"mentorhub_backend/internal/models"
)

// Filter returns the subset of mentors matching every set predicate group
// in f, preserving input order. Non-mentor records are never candidates.
// An empty filter returns all mentors.
func Filter(mentors []models.User, f models.MentorFilter) []models.User {
	out := make([]models.User, 0, len(mentors))
	for _, m := range mentors {
		if !m.IsMentor {
			continue
		}
		if !matchesQuery(&m, f.Query) {
			continue
		}
		if !matchesSkills(&m, f.Skills) {
			continue
		}
		if !matchesPrice(&m, f.MinPrice, f.MaxPrice) {
			continue
		}
		if !matchesAvailability(&m, f.Availability) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// matchesQuery checks the free-text group: case-insensitive substring of
// "first last", company, position or bio. OR across fields.
func matchesQuery(m *models.User, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(m.FullName()), q) {
		return true
	}
	for _, field := range []*string{m.Company, m.Position, m.Bio} {
		if field != nil && strings.Contains(strings.ToLower(*field), q) {
			return true
		}
	}
	return false
}

// matchesSkills passes when the mentor lists ANY requested skill. A mentor
// without skills fails every non-empty skill filter.
func matchesSkills(m *models.User, requested []string) bool {
	if len(requested) == 0 {
		return true
	}
	for _, want := range requested {
		for _, have := range m.Skills {
			if have == want {
				return true
			}
		}
	}
	return false
}

// matchesPrice applies inclusive bounds to the monthly rate. A mentor with
// no monthly rate fails whichever bound is present.
func matchesPrice(m *models.User, min, max *int) bool {
	if min != nil && (m.MonthlyRate == nil || *m.MonthlyRate < *min) {
		return false
	}
	if max != nil && (m.MonthlyRate == nil || *m.MonthlyRate > *max) {
		return false
	}
	return true
}

// matchesAvailability is a plain substring check against the mentor's
// single availability tag, not set membership.
func matchesAvailability(m *models.User, tag string) bool {
	if tag == "" {
		return true
	}
	return m.Availability != nil && strings.Contains(*m.Availability, tag)
}
