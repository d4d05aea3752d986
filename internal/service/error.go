package service

import "errors"

var (
	ErrSendingDisabled     = errors.New("SENDING_DISABLED")
	ErrInvalidRecipient    = errors.New("INVALID_RECIPIENT")
	ErrRecipientSuppressed = errors.New("RECIPIENT_SUPPRESSED")
	ErrTemplateNotFound    = errors.New("TEMPLATE_NOT_FOUND")
	ErrSendNotFound        = errors.New("SEND_NOT_FOUND")
	ErrDatabase            = errors.New("DATABASE_ERROR")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
