package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project entry with its display metadata
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid();not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	Technology  string    `json:"technology" db:"technology" gorm:"type:text;not null"`
	GithubURL   *string   `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	DemoURL     *string   `json:"demo_url,omitempty" db:"demo_url" gorm:"type:text"`
	ImageURL    string    `json:"image_url" db:"image_url" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"not null;default:now()"`
}
