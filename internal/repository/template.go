package repository

import (
	"errors"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
	"gorm.io/gorm"
)

var ErrTemplateNotFound = errors.New("TEMPLATE_NOT_FOUND")

type TemplateRepository interface {
	FindActive(key, language string) (*model.Template, error)
}

type Template struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &Template{db: db}
}

// FindActive only ever returns active templates. An inactive template for the
// requested key and language is treated the same as a missing one.
func (r *Template) FindActive(key, language string) (*model.Template, error) {
	var template model.Template

	err := r.db.Where("template_key = ? AND language = ? AND active = ?", key, language, true).
		First(&template).Error
	if err == nil {
		return &template, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}

	return nil, err
}
