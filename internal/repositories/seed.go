package repositories

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"mentorhub_backend/internal/models"
)

// Seed loads the sample skills, mentors, mentees and reviews into an empty
// store. Mentor ids come out 1-6 and mentee ids 7-8, which the sample
// reviews reference.
func Seed(store *Store) error {
	skills := []models.Skill{
		{Name: "React", Category: models.SkillCategoryFrontend},
		{Name: "TypeScript", Category: models.SkillCategoryFrontend},
		{Name: "JavaScript", Category: models.SkillCategoryFrontend},
		{Name: "Node.js", Category: models.SkillCategoryBackend},
		{Name: "Python", Category: models.SkillCategoryBackend},
		{Name: "Java", Category: models.SkillCategoryBackend},
		{Name: "Kotlin", Category: models.SkillCategoryMobile},
		{Name: "Swift", Category: models.SkillCategoryMobile},
		{Name: "UX Design", Category: models.SkillCategoryDesign},
		{Name: "UI Design", Category: models.SkillCategoryDesign},
		{Name: "System Design", Category: models.SkillCategoryArchitecture},
		{Name: "Microservices", Category: models.SkillCategoryArchitecture},
		{Name: "AWS", Category: models.SkillCategoryDevOps},
		{Name: "Kubernetes", Category: models.SkillCategoryDevOps},
		{Name: "Machine Learning", Category: models.SkillCategoryDataScience},
		{Name: "TensorFlow", Category: models.SkillCategoryDataScience},
		{Name: "Leadership", Category: models.SkillCategorySoftSkills},
		{Name: "Career Growth", Category: models.SkillCategorySoftSkills},
	}
	for i := range skills {
		if _, err := store.Skills.Create(&skills[i]); err != nil {
			return fmt.Errorf("seed skill %q: %w", skills[i].Name, err)
		}
	}

	// All sample accounts share the same demo password.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	hash := string(passwordHash)

	mentors := []models.User{
		{
			Email:        "sarah@example.com",
			PasswordHash: hash,
			FirstName:    "Sarah",
			LastName:     "Chen",
			Bio:          strPtr("Helping engineers level up their frontend skills and navigate big tech careers. Specialized in React, TypeScript, and system design."),
			ProfilePic:   strPtr("https://randomuser.me/api/portraits/women/44.jpg"),
			Position:     strPtr("Senior Software Engineer"),
			Company:      strPtr("Google"),
			IsMentor:     true,
			Title:        strPtr("Frontend Expert & Career Coach"),
			HourlyRate:   intPtr(80),
			MonthlyRate:  intPtr(120),
			Availability: strPtr("Weekends"),
			Skills:       []string{"React", "TypeScript", "System Design", "Career Growth"},
		},
		{
			Email:        "alex@example.com",
			PasswordHash: hash,
			FirstName:    "Alex",
			LastName:     "Rodriguez",
			Bio:          strPtr("Backend specialist with 12+ years of experience building highly scalable systems. Expert in microservices, distributed systems, and Java/Kotlin."),
			ProfilePic:   strPtr("https://randomuser.me/api/portraits/men/32.jpg"),
			Position:     strPtr("Staff Engineer"),
			Company:      strPtr("Netflix"),
			IsMentor:     true,
			Title:        strPtr("Backend & Systems Architect"),
			HourlyRate:   intPtr(100),
			MonthlyRate:  intPtr(180),
			Availability: strPtr("Weekdays evenings"),
			Skills:       []string{"Java", "Kotlin", "Microservices", "System Design"},
		},
		{
			Email:        "priya@example.com",
			PasswordHash: hash,
			FirstName:    "Priya",
			LastName:     "Patel",
			Bio:          strPtr("Experienced engineering manager helping developers transition to leadership roles. Guidance on team management, technical strategy, and career advancement."),
			ProfilePic:   strPtr("https://randomuser.me/api/portraits/women/68.jpg"),
			Position:     strPtr("Engineering Manager"),
			Company:      strPtr("Shopify"),
			IsMentor:     true,
			Title:        strPtr("Tech Leadership Coach"),
			HourlyRate:   intPtr(90),
			MonthlyRate:  intPtr(150),
			Availability: strPtr("Flexible"),
			Skills:       []string{"Leadership", "Career Growth", "Tech Strategy", "Team Building"},
		},
		{
			Email:        "david@example.com",
			PasswordHash: hash,
			FirstName:    "David",
			LastName:     "Kim",
			Bio:          strPtr("ML specialist focused on helping engineers transition into AI and data science. Experience with TensorFlow, PyTorch, and production ML systems."),
			ProfilePic:   strPtr("https://randomuser.me/api/portraits/men/75.jpg"),
			Position:     strPtr("Machine Learning Engineer"),
			Company:      strPtr("Microsoft"),
			IsMentor:     true,
			Title:        strPtr("AI & ML Expert"),
			HourlyRate:   intPtr(120),
			MonthlyRate:  intPtr(200),
			Availability: strPtr("Weekdays"),
			Skills:       []string{"Machine Learning", "Python", "TensorFlow", "PyTorch"},
		},
		{
			Email:        "emma@example.com",
			PasswordHash: hash,
			FirstName:    "Emma",
			LastName:     "Wilson",
			Bio:          strPtr("Helping designers and developers improve their UX skills. Specialized in user research, interaction design, and building design systems."),
			ProfilePic:   strPtr("https://randomuser.me/api/portraits/women/90.jpg"),
			Position:     strPtr("UX Designer"),
			Company:      strPtr("Airbnb"),
			IsMentor:     true,
			Title:        strPtr("UX/UI Design Mentor"),
			HourlyRate:   intPtr(85),
			MonthlyRate:  intPtr(140),
			Availability: strPtr("Weekends"),
			Skills:       []string{"UX Design", "UI Design", "Design Systems", "User Research"},
		},
		{
			Email:        "michael@example.com",
			PasswordHash: hash,
			FirstName:    "Michael",
			LastName:     "Johnson",
			Bio:          strPtr("DevOps and cloud infrastructure expert. Helping engineers master AWS, CI/CD pipelines, Kubernetes, and infrastructure as code."),
			ProfilePic:   strPtr("https://randomuser.me/api/portraits/men/46.jpg"),
			Position:     strPtr("DevOps Lead"),
			Company:      strPtr("Amazon"),
			IsMentor:     true,
			Title:        strPtr("Cloud & DevOps Specialist"),
			HourlyRate:   intPtr(95),
			MonthlyRate:  intPtr(160),
			Availability: strPtr("Weekdays evenings"),
			Skills:       []string{"AWS", "Kubernetes", "DevOps", "Terraform"},
		},
	}

	mentees := []models.User{
		{
			Email:        "jessica@example.com",
			PasswordHash: hash,
			FirstName:    "Jessica",
			LastName:     "Lee",
			Bio:          strPtr("Frontend developer looking to improve React skills and grow my career."),
			ProfilePic:   strPtr("https://randomuser.me/api/portraits/women/33.jpg"),
			Position:     strPtr("Frontend Developer"),
			Company:      strPtr("Spotify"),
			IsMentor:     false,
		},
		{
			Email:        "marcus@example.com",
			PasswordHash: hash,
			FirstName:    "Marcus",
			LastName:     "Chen",
			Bio:          strPtr("Transitioning into data science from a non-CS background."),
			ProfilePic:   strPtr("https://randomuser.me/api/portraits/men/22.jpg"),
			Position:     strPtr("Data Scientist"),
			Company:      strPtr("Stripe"),
			IsMentor:     false,
		},
	}

	for i := range mentors {
		if _, err := store.Users.Create(&mentors[i]); err != nil {
			return fmt.Errorf("seed mentor %s: %w", mentors[i].Email, err)
		}
	}
	for i := range mentees {
		if _, err := store.Users.Create(&mentees[i]); err != nil {
			return fmt.Errorf("seed mentee %s: %w", mentees[i].Email, err)
		}
	}

	reviews := []models.Review{
		{
			MentorID: 1,
			MenteeID: 7,
			Rating:   5,
			Comment:  strPtr("Working with Sarah completely transformed my career trajectory. Her guidance helped me improve my React skills and land a senior role at a top tech company. The structured approach to our sessions made every minute valuable."),
		},
		{
			MentorID: 4,
			MenteeID: 8,
			Rating:   5,
			Comment:  strPtr("As someone transitioning into tech from a non-CS background, finding David as a mentor was game-changing. He helped me understand machine learning concepts in a practical way and guided me through building my first production ML model."),
		},
	}
	for i := range reviews {
		if _, err := store.Reviews.Create(&reviews[i]); err != nil {
			return fmt.Errorf("seed review for mentor %d: %w", reviews[i].MentorID, err)
		}
	}

	return nil
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
