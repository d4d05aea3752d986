package service

import "github.com/Behyna/sms-services/dispatcher/internal/model"

// DispatchCommand identifies one logical notification. Metadata is the
// identity of the logical event (e.g. {"appointment_id": 7, "kind":
// "reminder_24h"}); Data holds the template variables.
type DispatchCommand struct {
	TemplateKey string            `json:"template_key"`
	Language    string            `json:"language"`
	Recipient   string            `json:"recipient"`
	Data        map[string]string `json:"data"`
	Metadata    map[string]any    `json:"metadata"`
}

type SuppressCommand struct {
	Recipient string
	Reason    model.SuppressionReason
}

type GetSendsQuery struct {
	Recipient string
	Limit     int
	Offset    int
}
