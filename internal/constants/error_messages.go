package constants

const (
	ErrCodeSendingDisabled     = "SENDING_DISABLED"
	ErrCodeInvalidRecipient    = "INVALID_RECIPIENT"
	ErrCodeRecipientSuppressed = "RECIPIENT_SUPPRESSED"
	ErrCodeTemplateNotFound    = "TEMPLATE_NOT_FOUND"
	ErrCodeDeliveryError       = "DELIVERY_ERROR"
	ErrCodeSendNotFound        = "SEND_NOT_FOUND"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeInvalidRequestBody  = "INVALID_REQUEST_BODY"
)

const (
	ErrMsgSendingDisabled     = "notification sending is disabled"
	ErrMsgInvalidRecipient    = "recipient is not a valid international phone number"
	ErrMsgRecipientSuppressed = "recipient is on the suppression list"
	ErrMsgTemplateNotFound    = "no active template for the requested key and language"
	ErrMsgDeliveryError       = "provider delivery failed"
	ErrMsgSendNotFound        = "send record not found"
	ErrMsgInternalError       = "Internal server error"
	ErrMsgInvalidRequestBody  = "failed to parse request body"
)

var errorMessages = map[string]string{
	ErrCodeSendingDisabled:     ErrMsgSendingDisabled,
	ErrCodeInvalidRecipient:    ErrMsgInvalidRecipient,
	ErrCodeRecipientSuppressed: ErrMsgRecipientSuppressed,
	ErrCodeTemplateNotFound:    ErrMsgTemplateNotFound,
	ErrCodeDeliveryError:       ErrMsgDeliveryError,
	ErrCodeSendNotFound:        ErrMsgSendNotFound,
	ErrCodeInternalError:       ErrMsgInternalError,
	ErrCodeInvalidRequestBody:  ErrMsgInvalidRequestBody,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeInvalidRecipient:
		return 400
	case ErrCodeSendNotFound, ErrCodeTemplateNotFound:
		return 404
	case ErrCodeRecipientSuppressed:
		return 422
	case ErrCodeDeliveryError:
		return 502
	case ErrCodeSendingDisabled:
		return 503
	case ErrCodeInternalError:
		return 500
	default:
		return 500
	}
}
