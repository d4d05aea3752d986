package validator_test

import (
	"testing"

	apivalidator "github.com/Behyna/sms-services/dispatcher/internal/api/validator"
	"github.com/stretchr/testify/assert"
)

type invoiceFields struct {
	TaxID string `validate:"omitempty,nip"`
}

type recipientFields struct {
	Recipient string `validate:"required,msisdn"`
}

func TestNIPTag(t *testing.T) {
	v := apivalidator.New()

	t.Run("accepts valid tax id", func(t *testing.T) {
		assert.NoError(t, v.Struct(invoiceFields{TaxID: "7751001452"}))
	})

	t.Run("accepts empty optional field", func(t *testing.T) {
		assert.NoError(t, v.Struct(invoiceFields{}))
	})

	t.Run("rejects bad checksum", func(t *testing.T) {
		assert.Error(t, v.Struct(invoiceFields{TaxID: "7751001453"}))
	})

	t.Run("rejects malformed value", func(t *testing.T) {
		assert.Error(t, v.Struct(invoiceFields{TaxID: "775-100-14"}))
	})
}

func TestMSISDNTag(t *testing.T) {
	v := apivalidator.New()

	t.Run("accepts clean international number", func(t *testing.T) {
		assert.NoError(t, v.Struct(recipientFields{Recipient: "+48601234567"}))
	})

	t.Run("accepts spaced number after normalization", func(t *testing.T) {
		assert.NoError(t, v.Struct(recipientFields{Recipient: "+48 601-234-567"}))
	})

	t.Run("rejects number without country prefix", func(t *testing.T) {
		assert.Error(t, v.Struct(recipientFields{Recipient: "601234567"}))
	})
}
