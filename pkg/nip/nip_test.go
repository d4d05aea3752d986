package nip_test

import (
	"testing"

	"github.com/Behyna/sms-services/dispatcher/pkg/nip"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("accepts valid number", func(t *testing.T) {
		assert.NoError(t, nip.Validate("7751001452"))
	})

	t.Run("rejects bad control digit", func(t *testing.T) {
		assert.ErrorIs(t, nip.Validate("7751001453"), nip.ErrChecksum)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		assert.ErrorIs(t, nip.Validate("775100145"), nip.ErrFormat)
		assert.ErrorIs(t, nip.Validate("77510014521"), nip.ErrFormat)
		assert.ErrorIs(t, nip.Validate(""), nip.ErrFormat)
	})

	t.Run("rejects non-digit characters", func(t *testing.T) {
		assert.ErrorIs(t, nip.Validate("775100145a"), nip.ErrFormat)
		assert.ErrorIs(t, nip.Validate("775-100-14"), nip.ErrFormat)
	})
}
