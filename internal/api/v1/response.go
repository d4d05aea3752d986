package v1

import (
	"time"

	"github.com/Behyna/sms-services/dispatcher/internal/model"
)

type SendRecordResponse struct {
	ID             int64      `json:"id"`
	IdempotencyKey string     `json:"idempotency_key"`
	TemplateKey    string     `json:"template_key"`
	Language       string     `json:"language"`
	Recipient      string     `json:"recipient"`
	Status         string     `json:"status"`
	Length         int        `json:"length"`
	Parts          int        `json:"parts"`
	Encoding       string     `json:"encoding"`
	ProviderMsgID  *string    `json:"provider_msg_id,omitempty"`
	SentAt         *time.Time `json:"sent_at,omitempty"`
	LastError      *string    `json:"last_error,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type QueuedResponse struct {
	Status string `json:"status"`
}

func NewSendRecordResponse(record *model.SendRecord) SendRecordResponse {
	return SendRecordResponse{
		ID:             record.ID,
		IdempotencyKey: record.IdempotencyKey,
		TemplateKey:    record.TemplateKey,
		Language:       record.Language,
		Recipient:      record.Recipient,
		Status:         string(record.Status),
		Length:         record.Length,
		Parts:          record.Parts,
		Encoding:       record.Encoding,
		ProviderMsgID:  record.ProviderMsgID,
		SentAt:         record.SentAt,
		LastError:      record.LastError,
		CreatedAt:      record.CreatedAt,
	}
}
