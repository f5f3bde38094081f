package content

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/uploads"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProjectWithoutFileUsesPlaceholder(t *testing.T) {
	env := newTestEnv()

	project, err := env.service.CreateProject(ProjectInput{Title: "Portfolio"}, nil)
	require.NoError(t, err)

	assert.Equal(t, uploads.PlaceholderRef, project.ImageURL)
	assert.Empty(t, env.images.stored, "image store must be untouched")
	assert.Len(t, env.projects.rows, 1)
}

func TestCreateProjectWithFileStoresImageFirst(t *testing.T) {
	env := newTestEnv()

	upload := &Upload{Data: []byte("png"), Filename: "shot.png", ContentType: "image/png"}
	project, err := env.service.CreateProject(ProjectInput{Title: "Portfolio"}, upload)
	require.NoError(t, err)

	require.Len(t, env.images.stored, 1)
	assert.Equal(t, env.images.stored[0], project.ImageURL)
	assert.Equal(t, project.ImageURL, env.projects.rows[project.ID].ImageURL)
}

func TestCreateProjectValidationFailureInsertsNoRow(t *testing.T) {
	env := newTestEnv()
	env.images.storeErr = errs.NewUnsupportedMediaTypeError("text/plain", uploads.AllowedTypes)

	upload := &Upload{Data: []byte("x"), Filename: "notes.txt", ContentType: "text/plain"}
	_, err := env.service.CreateProject(ProjectInput{Title: "Portfolio"}, upload)

	require.Error(t, err)
	assert.True(t, errs.IsUnsupportedMediaTypeError(err))
	assert.Empty(t, env.projects.rows, "no partial row may be inserted")
}

func TestCreateProjectRequiresTitle(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.CreateProject(ProjectInput{}, &Upload{Filename: "shot.png"})

	require.Error(t, err)
	assert.True(t, errs.IsMissingRequiredFieldError(err))
	assert.Empty(t, env.images.stored, "validation must run before any file write")
}

func TestUpdateProjectWithNewFileReplacesOldImage(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Old", ImageURL: "/uploads/project-old.png"}
	env.projects = newFakeProjectStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	upload := &Upload{Data: []byte("png"), Filename: "new.png", ContentType: "image/png"}
	updated, err := env.service.UpdateProject(existing.ID, ProjectInput{Title: "New"}, upload)
	require.NoError(t, err)

	require.Len(t, env.images.stored, 1)
	assert.Equal(t, env.images.stored[0], updated.ImageURL)
	assert.Equal(t, []string{"/uploads/project-old.png"}, env.images.deleted)
	assert.Equal(t, "New", env.projects.rows[existing.ID].Title)
}

func TestUpdateProjectNeverDeletesPlaceholder(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Old", ImageURL: uploads.PlaceholderRef}
	env.projects = newFakeProjectStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	upload := &Upload{Data: []byte("png"), Filename: "new.png", ContentType: "image/png"}
	_, err := env.service.UpdateProject(existing.ID, ProjectInput{Title: "New"}, upload)
	require.NoError(t, err)

	assert.Empty(t, env.images.deleted)
}

func TestUpdateProjectWithoutFileKeepsReference(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Old", ImageURL: "/uploads/project-old.png"}
	env.projects = newFakeProjectStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	updated, err := env.service.UpdateProject(existing.ID, ProjectInput{Title: "New"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "/uploads/project-old.png", updated.ImageURL)
	assert.Empty(t, env.images.stored)
	assert.Empty(t, env.images.deleted)
}

func TestUpdateProjectStoreFailureMutatesNothing(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Old", ImageURL: "/uploads/project-old.png"}
	env.projects = newFakeProjectStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)
	env.images.storeErr = errs.NewMaxBodySizeExceededError(uploads.DefaultMaxBytes)

	upload := &Upload{Data: []byte("big"), Filename: "big.png", ContentType: "image/png"}
	_, err := env.service.UpdateProject(existing.ID, ProjectInput{Title: "New"}, upload)

	require.Error(t, err)
	assert.True(t, errs.IsMaxBodySizeExceededError(err))
	assert.Empty(t, env.images.deleted, "old image must survive a failed store")
	assert.Equal(t, "Old", env.projects.rows[existing.ID].Title)
	assert.Equal(t, "/uploads/project-old.png", env.projects.rows[existing.ID].ImageURL)
}

func TestUpdateProjectOldFileAlreadyGoneIsNotFatal(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Old", ImageURL: "/uploads/project-old.png"}
	env.projects = newFakeProjectStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)
	env.images.deleteErr = errors.New("remove: permission denied")

	upload := &Upload{Data: []byte("png"), Filename: "new.png", ContentType: "image/png"}
	updated, err := env.service.UpdateProject(existing.ID, ProjectInput{Title: "New"}, upload)

	require.NoError(t, err, "cleanup failure is best-effort, never fatal")
	assert.Equal(t, env.images.stored[0], updated.ImageURL)
}

func TestUpdateProjectNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.UpdateProject(uuid.New(), ProjectInput{Title: "X"}, nil)

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteProjectRemovesRowAndFile(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Old", ImageURL: "/uploads/project-old.png"}
	env.projects = newFakeProjectStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	require.NoError(t, env.service.DeleteProject(existing.ID))

	assert.Empty(t, env.projects.rows)
	assert.Equal(t, []string{"/uploads/project-old.png"}, env.images.deleted)
}

func TestDeleteProjectWithPlaceholderLeavesStoreUntouched(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Old", ImageURL: uploads.PlaceholderRef}
	env.projects = newFakeProjectStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	require.NoError(t, env.service.DeleteProject(existing.ID))

	assert.Empty(t, env.projects.rows)
	assert.Empty(t, env.images.deleted)
}

func TestDeleteProjectNotFoundHasNoSideEffects(t *testing.T) {
	env := newTestEnv()

	err := env.service.DeleteProject(uuid.New())

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.Zero(t, env.projects.deletes)
	assert.Empty(t, env.images.deleted)
}

func TestDeleteProjectFileFailureDoesNotResurrectRow(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Old", ImageURL: "/uploads/project-old.png"}
	env.projects = newFakeProjectStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)
	env.images.deleteErr = errors.New("remove: file locked")

	require.NoError(t, env.service.DeleteProject(existing.ID))
	assert.Empty(t, env.projects.rows)
}

func TestGetProject(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Portfolio", ImageURL: uploads.PlaceholderRef}
	env.projects = newFakeProjectStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	project, err := env.service.GetProject(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "Portfolio", project.Title)

	_, err = env.service.GetProject(uuid.New())
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteProjectRowFailureSkipsFileCleanup(t *testing.T) {
	env := newTestEnv()
	existing := &models.Project{Title: "Old", ImageURL: "/uploads/project-old.png"}
	env.projects = newFakeProjectStore(existing)
	env.projects.deleteErr = errors.New("connection refused")
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	err := env.service.DeleteProject(existing.ID)

	require.Error(t, err)
	assert.Empty(t, env.images.deleted, "file stays while the row still references it")
}
