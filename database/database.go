package database

import (
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	projectRepo *ProjectRepo
	skillRepo   *SkillRepo
	aboutRepo   *AboutRepo
	contactRepo *ContactRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		projectRepo: NewProjectRepo(db),
		skillRepo:   NewSkillRepo(db),
		aboutRepo:   NewAboutRepo(db),
		contactRepo: NewContactRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) AboutRepo() *AboutRepo {
	return d.aboutRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

// Migrate creates or updates the schema for every collection.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Project{},
		&models.Skill{},
		&models.AboutFact{},
		&models.Contact{},
	)
}

// defaultAboutInfo is the initial about section. The rows are seeded once and
// afterwards only mutated in place by the admin surface.
var defaultAboutInfo = []models.AboutFact{
	{SectionKey: "intro", Title: "Intro", Value: "Backend developer who enjoys building small, reliable systems.", DisplayOrder: 1},
	{SectionKey: models.KeyYearsExperience, Title: "Years of Experience", Value: "2022", DisplayOrder: 2},
	{SectionKey: models.KeyCompletedProjects, Title: "Completed Projects", Value: "0+", DisplayOrder: 3},
	{SectionKey: models.KeyTechStack, Title: "Tech Stack", Value: "0+", DisplayOrder: 4},
	{SectionKey: "location", Title: "Location", Value: "Seoul, KR", DisplayOrder: 5},
}

// SeedAboutInfo inserts the default about facts when the table is empty.
// Returns the number of rows inserted.
func SeedAboutInfo(db *gorm.DB) (int64, error) {
	var count int64
	if err := db.Model(&models.AboutFact{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	result := db.Create(&defaultAboutInfo)
	return result.RowsAffected, result.Error
}
