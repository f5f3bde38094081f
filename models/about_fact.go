package models

import "github.com/google/uuid"

// Section keys that participate in derived-value substitution on the public view.
const (
	KeyYearsExperience   = "years_experience"
	KeyCompletedProjects = "completed_projects"
	KeyTechStack         = "tech_stack"
)

// AboutFact is a key/value entry rendered in the about section. Facts are seeded
// at startup and only ever mutated in place.
type AboutFact struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	SectionKey   string    `json:"section_key" db:"section_key" gorm:"type:text;not null;uniqueIndex"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	Value        string    `json:"value" db:"value" gorm:"type:text;not null"`
	DisplayOrder int       `json:"display_order" db:"display_order" gorm:"not null;default:0"`
}

// TableName keeps the original table naming.
func (AboutFact) TableName() string {
	return "about_info"
}
