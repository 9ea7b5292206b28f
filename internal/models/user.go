package models

// User is the identity record shared by mentors and mentees. Mentor-only
// fields stay nil for mentees. PasswordHash is never serialized.
type User struct {
	ID           int     `json:"id"`
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	FirstName    string  `json:"firstName"`
	LastName     string  `json:"lastName"`
	Bio          *string `json:"bio,omitempty"`
	ProfilePic   *string `json:"profilePicture,omitempty"`
	Position     *string `json:"position,omitempty"`
	Company      *string `json:"company,omitempty"`
	IsMentor     bool    `json:"isMentor"`

	// Mentor-specific fields
	Title        *string  `json:"title,omitempty"`
	HourlyRate   *int     `json:"hourlyRate,omitempty"`
	MonthlyRate  *int     `json:"monthlyRate,omitempty"`
	Availability *string  `json:"availability,omitempty"`
	Skills       []string `json:"skills,omitempty"`
}

// FullName is the "first last" form the mentor search matches against.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
