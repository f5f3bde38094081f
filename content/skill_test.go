package content

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSkillDefaultsLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		wantLevel int
	}{
		{"omitted level", 0, DefaultSkillLevel},
		{"negative level", -10, DefaultSkillLevel},
		{"explicit level", 70, 70},
		{"explicit default", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			skill, err := env.service.CreateSkill(SkillInput{
				Category: models.CategoryBackend,
				Name:     "Go",
				Level:    tt.level,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, skill.Level)
		})
	}
}

func TestCreateSkillValidatesCategory(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.CreateSkill(SkillInput{Category: "Gardening", Name: "Pruning"})

	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err))
	assert.Empty(t, env.skills.rows)
}

func TestCreateSkillAcceptsEveryKnownCategory(t *testing.T) {
	env := newTestEnv()

	for _, category := range models.SkillCategories {
		_, err := env.service.CreateSkill(SkillInput{Category: category, Name: "something"})
		require.NoError(t, err, "category %s should be accepted", category)
	}
}

func TestCreateSkillRequiresName(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.CreateSkill(SkillInput{Category: models.CategoryTools})

	require.Error(t, err)
	assert.True(t, errs.IsMissingRequiredFieldError(err))
}

func TestUpdateSkillDefaultsZeroLevel(t *testing.T) {
	env := newTestEnv()
	existing := &models.Skill{Category: models.CategoryFrontend, Name: "React", Level: 80}
	env.skills = newFakeSkillStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	updated, err := env.service.UpdateSkill(existing.ID, SkillInput{
		Category: models.CategoryFrontend,
		Name:     "React",
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultSkillLevel, updated.Level)
}

func TestUpdateSkillValidatesCategory(t *testing.T) {
	env := newTestEnv()
	existing := &models.Skill{Category: models.CategoryFrontend, Name: "React", Level: 80}
	env.skills = newFakeSkillStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	_, err := env.service.UpdateSkill(existing.ID, SkillInput{Category: "frontend", Name: "React"})

	require.Error(t, err)
	assert.True(t, errs.IsInvalidFieldError(err), "category comparison is case sensitive")
	assert.Equal(t, models.CategoryFrontend, env.skills.rows[existing.ID].Category)
}

func TestUpdateSkillNotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.UpdateSkill(uuid.New(), SkillInput{Category: models.CategoryTools, Name: "Git"})

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteSkill(t *testing.T) {
	env := newTestEnv()
	existing := &models.Skill{Category: models.CategoryDevOps, Name: "Docker"}
	env.skills = newFakeSkillStore(existing)
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)

	require.NoError(t, env.service.DeleteSkill(existing.ID))
	assert.Empty(t, env.skills.rows)

	err := env.service.DeleteSkill(existing.ID)
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}
