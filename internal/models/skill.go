package models

// Skill is static reference data seeded at startup.
type Skill struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Skill categories present in the seed data.
const (
	SkillCategoryFrontend     = "Frontend"
	SkillCategoryBackend      = "Backend"
	SkillCategoryMobile       = "Mobile"
	SkillCategoryDesign       = "Design"
	SkillCategoryArchitecture = "Architecture"
	SkillCategoryDevOps       = "DevOps"
	SkillCategoryDataScience  = "Data Science"
	SkillCategorySoftSkills   = "Soft Skills"
)
