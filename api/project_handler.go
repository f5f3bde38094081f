package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/uploads"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// formOverhead covers the non-file multipart fields on top of the image cap.
const formOverhead = 1 << 20

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	service   *content.Service
}

func newProjectHandler(service *content.Service) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		service:   service,
	}
}

// createProject creates a new project from a multipart form
// @Summary Create project
// @Description Creates a new project, storing the optional image upload before the row is inserted
// @Tags Projects
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Project title"
// @Param image formData file false "Project image (jpeg, jpg, png, gif, webp; max 5 MiB)"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 413 {object} ErrorResponse "Payload Too Large - Image exceeds size cap"
// @Failure 415 {object} ErrorResponse "Unsupported Media Type - Disallowed image type"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /admin/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input, upload, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.CreateProject(input, upload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject updates an existing project from a multipart form
// @Summary Update project
// @Description Updates a project; a newly uploaded image replaces and deletes the previous one
// @Tags Projects
// @Accept multipart/form-data
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /admin/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		input, upload, err := parseProjectForm(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.service.UpdateProject(projectID, input, upload)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project row and then its stored image file
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /admin/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.service.DeleteProject(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}

// parseIDParam extracts and parses a uuid path parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing " + name)
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid " + name)
	}
	return id, nil
}

// parseProjectForm reads the multipart project form. The optional image part
// is returned separately; a missing image part is not an error.
func parseProjectForm(r *http.Request) (content.ProjectInput, *content.Upload, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, uploads.DefaultMaxBytes+formOverhead)

	if err := r.ParseMultipartForm(uploads.DefaultMaxBytes); err != nil {
		// The MaxBytesReader error may surface wrapped or flattened depending
		// on where in the multipart copy it tripped.
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large") {
			return content.ProjectInput{}, nil, errs.NewMaxBodySizeExceededError(uploads.DefaultMaxBytes)
		}
		return content.ProjectInput{}, nil, errs.NewBadRequestError("malformed multipart form")
	}

	input := content.ProjectInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Technology:  r.FormValue("technology"),
		GithubURL:   optionalField(r.FormValue("github_url")),
		DemoURL:     optionalField(r.FormValue("demo_url")),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return input, nil, nil
		}
		return content.ProjectInput{}, nil, errs.NewBadRequestError("failed to read image upload")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return content.ProjectInput{}, nil, errs.NewInternalErrorWithCause("failed to read image upload", err)
	}

	upload := &content.Upload{
		Data:        data,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}
	return input, upload, nil
}

// optionalField maps empty form values to nil like the original schema's
// nullable link columns.
func optionalField(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
