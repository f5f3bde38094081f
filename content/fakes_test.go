package content

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

// In-memory store fakes. Missing ids surface gorm.ErrRecordNotFound the way
// the real repositories do.

type fakeProjectStore struct {
	rows      map[uuid.UUID]*models.Project
	addErr    error
	updateErr error
	deleteErr error
	deletes   int
}

func newFakeProjectStore(projects ...*models.Project) *fakeProjectStore {
	rows := make(map[uuid.UUID]*models.Project)
	for _, p := range projects {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		rows[p.ID] = p
	}
	return &fakeProjectStore{rows: rows}
}

func (f *fakeProjectStore) FindAll() ([]*models.Project, error) {
	var all []*models.Project
	for _, p := range f.rows {
		all = append(all, p)
	}
	return all, nil
}

func (f *fakeProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProjectStore) Count() (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeProjectStore) Add(project *models.Project) error {
	if f.addErr != nil {
		return f.addErr
	}
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	clone := *project
	f.rows[project.ID] = &clone
	return nil
}

func (f *fakeProjectStore) Update(project *models.Project) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	clone := *project
	f.rows[project.ID] = &clone
	return nil
}

func (f *fakeProjectStore) Delete(id uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletes++
	delete(f.rows, id)
	return nil
}

type fakeSkillStore struct {
	rows map[uuid.UUID]*models.Skill
}

func newFakeSkillStore(skills ...*models.Skill) *fakeSkillStore {
	rows := make(map[uuid.UUID]*models.Skill)
	for _, s := range skills {
		if s.ID == uuid.Nil {
			s.ID = uuid.New()
		}
		rows[s.ID] = s
	}
	return &fakeSkillStore{rows: rows}
}

func (f *fakeSkillStore) FindAll() ([]*models.Skill, error) {
	var all []*models.Skill
	for _, s := range f.rows {
		all = append(all, s)
	}
	return all, nil
}

func (f *fakeSkillStore) FindByID(id uuid.UUID) (*models.Skill, error) {
	s, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *s
	return &clone, nil
}

func (f *fakeSkillStore) Count() (int64, error) {
	return int64(len(f.rows)), nil
}

func (f *fakeSkillStore) CountCategories() (int64, error) {
	seen := make(map[models.SkillCategory]bool)
	for _, s := range f.rows {
		seen[s.Category] = true
	}
	return int64(len(seen)), nil
}

func (f *fakeSkillStore) Add(skill *models.Skill) error {
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	clone := *skill
	f.rows[skill.ID] = &clone
	return nil
}

func (f *fakeSkillStore) Update(skill *models.Skill) error {
	clone := *skill
	f.rows[skill.ID] = &clone
	return nil
}

func (f *fakeSkillStore) Delete(id uuid.UUID) error {
	delete(f.rows, id)
	return nil
}

type fakeAboutStore struct {
	facts []*models.AboutFact
}

func (f *fakeAboutStore) FindAll() ([]*models.AboutFact, error) {
	return f.facts, nil
}

func (f *fakeAboutStore) UpdateValueByKey(sectionKey, value string) (int64, error) {
	var affected int64
	for _, fact := range f.facts {
		if fact.SectionKey == sectionKey {
			fact.Value = value
			affected++
		}
	}
	return affected, nil
}

type fakeContactStore struct {
	added []*models.Contact
}

func (f *fakeContactStore) Add(contact *models.Contact) error {
	f.added = append(f.added, contact)
	return nil
}

// fakeImageStore records stored and deleted references without touching disk.
type fakeImageStore struct {
	storeErr  error
	deleteErr error
	stored    []string
	deleted   []string
	nextID    int
}

func (f *fakeImageStore) Store(data []byte, originalFilename, contentType string) (string, error) {
	if f.storeErr != nil {
		return "", f.storeErr
	}
	f.nextID++
	ref := fmt.Sprintf("/uploads/project-fake-%d.png", f.nextID)
	f.stored = append(f.stored, ref)
	return ref, nil
}

func (f *fakeImageStore) Delete(ref string) error {
	f.deleted = append(f.deleted, ref)
	if f.deleteErr != nil {
		return f.deleteErr
	}
	return nil
}

type testEnv struct {
	service  *Service
	projects *fakeProjectStore
	skills   *fakeSkillStore
	about    *fakeAboutStore
	contacts *fakeContactStore
	images   *fakeImageStore
}

func newTestEnv() *testEnv {
	env := &testEnv{
		projects: newFakeProjectStore(),
		skills:   newFakeSkillStore(),
		about:    &fakeAboutStore{},
		contacts: &fakeContactStore{},
		images:   &fakeImageStore{},
	}
	env.service = NewService(env.projects, env.skills, env.about, env.contacts, env.images)
	return env
}
