package database

import (
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/gorm"
)

type AboutRepo struct {
	db *gorm.DB
}

func NewAboutRepo(db *gorm.DB) *AboutRepo {
	return &AboutRepo{db}
}

// FindAll returns all about facts in display order
func (r *AboutRepo) FindAll() ([]*models.AboutFact, error) {
	var facts []*models.AboutFact
	err := r.db.Order("display_order").Find(&facts).Error
	return facts, err
}

// UpdateValueByKey overwrites the value of the fact with the given section key.
// Returns the number of rows affected; zero means no fact has that key.
func (r *AboutRepo) UpdateValueByKey(sectionKey, value string) (int64, error) {
	result := r.db.Model(&models.AboutFact{}).
		Where("section_key = ?", sectionKey).
		Update("value", value)
	return result.RowsAffected, result.Error
}
