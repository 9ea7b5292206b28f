package models

// MentorFilter is the set of predicates the mentor search accepts.
// Every group is optional; the groups are AND-combined.
type MentorFilter struct {
	// Query is matched case-insensitively as a substring of the mentor's
	// full name, company, position and bio. Empty means "no filter".
	Query string

	// Skills matches if the mentor lists ANY of the requested skills.
	Skills []string

	// MinPrice/MaxPrice are inclusive bounds on the monthly rate. A nil
	// bound leaves that side unconstrained.
	MinPrice *int
	MaxPrice *int

	// Availability must appear as a substring of the mentor's stored
	// availability tag.
	Availability string
}

// IsZero reports whether no predicate group is set.
func (f MentorFilter) IsZero() bool {
	return f.Query == "" && len(f.Skills) == 0 &&
		f.MinPrice == nil && f.MaxPrice == nil && f.Availability == ""
}
