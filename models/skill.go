package models

import "github.com/google/uuid"

// SkillCategory is the closed set of skill groupings the site renders.
type SkillCategory string

const (
	CategoryFrontend SkillCategory = "Frontend"
	CategoryBackend  SkillCategory = "Backend"
	CategoryDatabase SkillCategory = "Database"
	CategoryDevOps   SkillCategory = "DevOps"
	CategoryTools    SkillCategory = "Tools"
	CategoryDesign   SkillCategory = "Design"
)

// SkillCategories lists every valid category in display order.
var SkillCategories = []SkillCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryDevOps,
	CategoryTools,
	CategoryDesign,
}

// Valid reports whether c is one of the enumerated categories.
func (c SkillCategory) Valid() bool {
	for _, known := range SkillCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Skill represents a single technology with a proficiency level
type Skill struct {
	ID       uuid.UUID     `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Category SkillCategory `json:"category" db:"category" gorm:"type:text;not null"`
	Name     string        `json:"name" db:"name" gorm:"type:text;not null"`
	Level    int           `json:"level" db:"level" gorm:"not null;default:50"`
}
