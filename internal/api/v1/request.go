package v1

type DispatchRequest struct {
	TemplateKey string            `json:"template_key" validate:"required"`
	Language    string            `json:"language" validate:"omitempty,oneof=pl en"`
	Recipient   string            `json:"recipient" validate:"required,msisdn"`
	TaxID       string            `json:"tax_id" validate:"omitempty,nip"`
	Data        map[string]string `json:"data"`
	Metadata    map[string]any    `json:"metadata"`
}

type SuppressRequest struct {
	Recipient string `json:"recipient" validate:"required,msisdn"`
	Reason    string `json:"reason" validate:"required,oneof=invalid_number opted_out repeated_failures manual"`
}

type GetSendsRequest struct {
	Recipient string `query:"recipient" validate:"required"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}
