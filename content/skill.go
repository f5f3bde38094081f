package content

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

// DefaultSkillLevel is stored when no proficiency level is submitted.
const DefaultSkillLevel = 50

// SkillInput carries the operator-submitted fields of a skill mutation. A
// Level of zero means unspecified.
type SkillInput struct {
	Category models.SkillCategory
	Name     string
	Level    int
}

func (in SkillInput) validate() error {
	if in.Name == "" {
		return errs.NewMissingRequiredFieldError("name")
	}
	if !in.Category.Valid() {
		return errs.NewInvalidFieldError("category",
			fmt.Sprintf("%q is not one of %v", in.Category, models.SkillCategories))
	}
	return nil
}

func (in SkillInput) level() int {
	if in.Level <= 0 {
		return DefaultSkillLevel
	}
	return in.Level
}

// ListSkills returns all skills grouped by category.
func (s *Service) ListSkills() ([]*models.Skill, error) {
	skills, err := s.skills.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skills", err)
	}
	return skills, nil
}

// GetSkill returns a single skill by id.
func (s *Service) GetSkill(id uuid.UUID) (*models.Skill, error) {
	skill, err := s.skills.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("skill")
		}
		return nil, errs.NewDatabaseError("find", "skill", err)
	}
	return skill, nil
}

// CreateSkill inserts a skill. The category is validated against the closed
// set on every write path, regardless of where the value came from.
func (s *Service) CreateSkill(input SkillInput) (*models.Skill, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	skill := &models.Skill{
		Category: input.Category,
		Name:     input.Name,
		Level:    input.level(),
	}

	if err := s.skills.Add(skill); err != nil {
		return nil, errs.NewDatabaseError("create", "skill", err)
	}
	return skill, nil
}

// UpdateSkill replaces a skill's fields in place.
func (s *Service) UpdateSkill(id uuid.UUID, input SkillInput) (*models.Skill, error) {
	skill, err := s.skills.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("skill")
		}
		return nil, errs.NewDatabaseError("find", "skill", err)
	}

	if err := input.validate(); err != nil {
		return nil, err
	}

	skill.Category = input.Category
	skill.Name = input.Name
	skill.Level = input.level()

	if err := s.skills.Update(skill); err != nil {
		return nil, errs.NewDatabaseError("update", "skill", err)
	}
	return skill, nil
}

// DeleteSkill removes a skill by id.
func (s *Service) DeleteSkill(id uuid.UUID) error {
	if _, err := s.skills.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewNotFound("skill")
		}
		return errs.NewDatabaseError("find", "skill", err)
	}

	if err := s.skills.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "skill", err)
	}
	return nil
}
