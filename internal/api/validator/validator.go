package validator

import (
	"github.com/Behyna/sms-services/dispatcher/pkg/nip"
	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"github.com/go-playground/validator/v10"
)

const (
	NIPTag    = "nip"
	MSISDNTag = "msisdn"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	NIPTag:    ValidateNIP,
	MSISDNTag: ValidateMSISDN,
}

// New returns a validator with the domain validation tags registered.
func New() *validator.Validate {
	v := validator.New()
	for key, function := range valid {
		v.RegisterValidation(key, function)
	}

	return v
}

func ValidateNIP(fl validator.FieldLevel) bool {
	return nip.Validate(fl.Field().String()) == nil
}

// ValidateMSISDN normalizes before matching so hand-entered numbers with
// spacing pass; the dispatch service normalizes again before use.
func ValidateMSISDN(fl validator.FieldLevel) bool {
	return smsgateway.ValidateRecipient(smsgateway.NormalizeRecipient(fl.Field().String()))
}
