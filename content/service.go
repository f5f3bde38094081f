// Package content couples content records to their uploaded image files and
// computes the derived values shown on the public site.
package content

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Upload is an image file submitted alongside a project mutation.
type Upload struct {
	Data        []byte
	Filename    string
	ContentType string
}

// ProjectStore is the persistence surface for project rows.
type ProjectStore interface {
	FindAll() ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Count() (int64, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
}

// SkillStore is the persistence surface for skill rows.
type SkillStore interface {
	FindAll() ([]*models.Skill, error)
	FindByID(id uuid.UUID) (*models.Skill, error)
	Count() (int64, error)
	CountCategories() (int64, error)
	Add(skill *models.Skill) error
	Update(skill *models.Skill) error
	Delete(id uuid.UUID) error
}

// AboutStore is the persistence surface for about facts.
type AboutStore interface {
	FindAll() ([]*models.AboutFact, error)
	UpdateValueByKey(sectionKey, value string) (int64, error)
}

// ContactStore is the persistence surface for contact messages.
type ContactStore interface {
	Add(contact *models.Contact) error
}

// ImageStore persists uploaded image files and hands out their references.
type ImageStore interface {
	Store(data []byte, originalFilename, contentType string) (string, error)
	Delete(ref string) error
}

// Service orchestrates the repositories and the image store so that row and
// file mutations stay coupled, and derives display values at read time.
type Service struct {
	projects ProjectStore
	skills   SkillStore
	about    AboutStore
	contacts ContactStore
	images   ImageStore
	logger   zerolog.Logger
}

func NewService(projects ProjectStore, skills SkillStore, about AboutStore, contacts ContactStore, images ImageStore) *Service {
	return &Service{
		projects: projects,
		skills:   skills,
		about:    about,
		contacts: contacts,
		images:   images,
		logger:   log.With().Str("component", "contentService").Logger(),
	}
}
