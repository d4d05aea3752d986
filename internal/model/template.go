package model

import "time"

type Template struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;<-:create"`
	Key       string    `gorm:"column:template_key;size:128;index:idx_template_key_language,unique"`
	Language  string    `gorm:"column:language;size:8;index:idx_template_key_language,unique"`
	Body      string    `gorm:"column:body;type:text"`
	MaxLength int       `gorm:"column:max_length"`
	Active    bool      `gorm:"column:active;default:true"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Template) TableName() string { return "templates" }
