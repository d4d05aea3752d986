package model

import "time"

type SendStatus string

const (
	SendStatusPending SendStatus = "PENDING"
	SendStatusSent    SendStatus = "SENT"
	SendStatusFailed  SendStatus = "FAILED"
	SendStatusBounced SendStatus = "BOUNCED"
)

// Terminal reports whether the status may never be left again.
func (s SendStatus) Terminal() bool {
	return s == SendStatusSent || s == SendStatusFailed || s == SendStatusBounced
}

type SendRecord struct {
	ID             int64      `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	IdempotencyKey string     `gorm:"column:idempotency_key;size:64;uniqueIndex:idx_idempotency_key;<-:create"`
	TemplateKey    string     `gorm:"column:template_key;size:128"`
	Language       string     `gorm:"column:language;size:8"`
	Recipient      string     `gorm:"column:recipient;size:32;index:idx_recipient"`
	Body           string     `gorm:"column:body;type:text"`
	Status         SendStatus `gorm:"column:status;type:enum('PENDING','SENT','FAILED','BOUNCED')"`
	Length         int        `gorm:"column:length"`
	Parts          int        `gorm:"column:parts"`
	Encoding       string     `gorm:"column:encoding;size:16"`
	ProviderMsgID  *string    `gorm:"column:provider_msg_id"`
	SentAt         *time.Time `gorm:"column:sent_at"`
	LastError      *string    `gorm:"column:last_error;type:text"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

func (SendRecord) TableName() string { return "send_records" }
