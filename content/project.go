package content

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/uploads"
	"gorm.io/gorm"
)

// ProjectInput carries the operator-submitted fields of a project mutation.
type ProjectInput struct {
	Title       string
	Description string
	Technology  string
	GithubURL   *string
	DemoURL     *string
}

// ListProjects returns all projects, newest first.
func (s *Service) ListProjects() ([]*models.Project, error) {
	projects, err := s.projects.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// GetProject returns a single project by id.
func (s *Service) GetProject(id uuid.UUID) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("project")
		}
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return project, nil
}

// CreateProject validates and stores the uploaded image (if any) before
// inserting the row, so a row never points at a file that failed to store.
// Without an upload the row gets the placeholder reference.
func (s *Service) CreateProject(input ProjectInput, upload *Upload) (*models.Project, error) {
	if input.Title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}

	imageURL := uploads.PlaceholderRef
	if upload != nil {
		ref, err := s.images.Store(upload.Data, upload.Filename, upload.ContentType)
		if err != nil {
			return nil, err
		}
		imageURL = ref
	}

	project := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		Technology:  input.Technology,
		GithubURL:   input.GithubURL,
		DemoURL:     input.DemoURL,
		ImageURL:    imageURL,
	}

	if err := s.projects.Add(project); err != nil {
		// The stored file is orphaned rather than the row dangling; a sweep
		// can reclaim it later.
		if !uploads.IsPlaceholder(imageURL) {
			s.logger.Error().Err(err).Str("ref", imageURL).Msg("project insert failed after image store")
		}
		return nil, errs.NewDatabaseError("create", "project", err)
	}

	return project, nil
}

// UpdateProject replaces the row's fields and, when a new image is uploaded,
// repoints the image reference. The new file is stored before the old one is
// touched; deleting the superseded file is best-effort and never fails the
// update.
func (s *Service) UpdateProject(id uuid.UUID, input ProjectInput, upload *Upload) (*models.Project, error) {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("project")
		}
		return nil, errs.NewDatabaseError("find", "project", err)
	}

	if input.Title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}

	if upload != nil {
		ref, err := s.images.Store(upload.Data, upload.Filename, upload.ContentType)
		if err != nil {
			return nil, err
		}

		if old := project.ImageURL; !uploads.IsPlaceholder(old) {
			if err := s.images.Delete(old); err != nil {
				s.logger.Error().Err(err).Str("ref", old).Msg("failed to delete superseded image")
			}
		}
		project.ImageURL = ref
	}

	project.Title = input.Title
	project.Description = input.Description
	project.Technology = input.Technology
	project.GithubURL = input.GithubURL
	project.DemoURL = input.DemoURL

	if err := s.projects.Update(project); err != nil {
		return nil, errs.NewDatabaseError("update", "project", err)
	}

	return project, nil
}

// DeleteProject removes the row and then its image file. File deletion is
// best-effort: a failure is logged and never resurrects the row.
func (s *Service) DeleteProject(id uuid.UUID) error {
	project, err := s.projects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("project")
		}
		return errs.NewDatabaseError("find", "project", err)
	}

	if err := s.projects.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}

	if ref := project.ImageURL; !uploads.IsPlaceholder(ref) {
		if err := s.images.Delete(ref); err != nil {
			s.logger.Error().Err(err).Str("ref", ref).Msg("failed to delete project image")
		}
	}

	return nil
}
