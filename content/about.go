package content

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// UpdateStartYear overwrites the years_experience fact with the submitted
// start year. The stored value stays a literal year; the elapsed-years display
// is derived on every public read. A missing years_experience row is a silent
// no-op, matching the admin form's fire-and-forget behavior.
func (s *Service) UpdateStartYear(startYear string) error {
	if strings.TrimSpace(startYear) == "" {
		return errs.NewMissingRequiredFieldError("start_year")
	}

	rows, err := s.about.UpdateValueByKey(models.KeyYearsExperience, startYear)
	if err != nil {
		return errs.NewDatabaseError("update", "about_info", err)
	}
	if rows == 0 {
		s.logger.Warn().Str("section_key", models.KeyYearsExperience).Msg("no about fact matched start year update")
	}
	return nil
}

// Stats are the live counts shown alongside the about section.
type Stats struct {
	Projects   int64 `json:"projects"`
	Skills     int64 `json:"skills"`
	Categories int64 `json:"categories"`
}

// View is everything the public site renders, with derived about values
// already substituted.
type View struct {
	Projects []*models.Project  `json:"projects"`
	Skills   []*models.Skill    `json:"skills"`
	About    []models.AboutFact `json:"about_info"`
	Stats    Stats              `json:"stats"`
}

// PublicView assembles the public read model. About-fact substitution is pure:
// stored rows are never mutated, and the derivation is recomputed on every
// call so counts and tenure stay live.
func (s *Service) PublicView(now time.Time) (*View, error) {
	projects, err := s.projects.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	skills, err := s.skills.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skills", err)
	}
	facts, err := s.about.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "about_info", err)
	}

	projectCount, err := s.projects.Count()
	if err != nil {
		return nil, errs.NewDatabaseError("count", "projects", err)
	}
	skillCount, err := s.skills.Count()
	if err != nil {
		return nil, errs.NewDatabaseError("count", "skills", err)
	}
	categoryCount, err := s.skills.CountCategories()
	if err != nil {
		return nil, errs.NewDatabaseError("count", "skill categories", err)
	}

	about := make([]models.AboutFact, 0, len(facts))
	for _, fact := range facts {
		about = append(about, substitute(*fact, projectCount, skillCount, now))
	}

	return &View{
		Projects: projects,
		Skills:   skills,
		About:    about,
		Stats: Stats{
			Projects:   projectCount,
			Skills:     skillCount,
			Categories: categoryCount,
		},
	}, nil
}

// substitute derives the display value for the well-known section keys and
// passes every other fact through unchanged.
func substitute(fact models.AboutFact, projectCount, skillCount int64, now time.Time) models.AboutFact {
	switch fact.SectionKey {
	case models.KeyCompletedProjects:
		fact.Value = fmt.Sprintf("%d+", projectCount)
	case models.KeyTechStack:
		fact.Value = fmt.Sprintf("%d+", skillCount)
	case models.KeyYearsExperience:
		// The stored value doubles as a start year. Non-numeric values are a
		// free-text override and fall through untouched.
		startYear, err := strconv.Atoi(strings.TrimSpace(fact.Value))
		if err == nil && startYear > 0 {
			fact.Value = fmt.Sprintf("%d년+", now.Year()-startYear)
		}
	}
	return fact
}

// Overview is the admin read model: raw rows, no derived substitution, so the
// operator edits what is actually stored.
type Overview struct {
	Projects []*models.Project   `json:"projects"`
	Skills   []*models.Skill     `json:"skills"`
	About    []*models.AboutFact `json:"about_info"`
}

// AdminOverview returns every collection as stored.
func (s *Service) AdminOverview() (*Overview, error) {
	projects, err := s.projects.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	skills, err := s.skills.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skills", err)
	}
	facts, err := s.about.FindAll()
	if err != nil {
		return nil, errs.NewDatabaseError("find", "about_info", err)
	}

	return &Overview{Projects: projects, Skills: skills, About: facts}, nil
}
