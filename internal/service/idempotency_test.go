package service_test

import (
	"testing"

	"github.com/Behyna/sms-services/dispatcher/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestDeriveIdempotencyKey(t *testing.T) {
	metadata := map[string]any{"appointment_id": 7, "kind": "reminder_24h"}

	t.Run("is deterministic for equal input", func(t *testing.T) {
		a, err := service.DeriveIdempotencyKey("reminder", "+48601234567", metadata)
		assert.NoError(t, err)

		b, err := service.DeriveIdempotencyKey("reminder", "+48601234567",
			map[string]any{"kind": "reminder_24h", "appointment_id": 7})
		assert.NoError(t, err)

		assert.Equal(t, a, b)
		assert.Len(t, a, 64)
	})

	t.Run("changes with template key", func(t *testing.T) {
		a, _ := service.DeriveIdempotencyKey("reminder", "+48601234567", metadata)
		b, _ := service.DeriveIdempotencyKey("confirmation", "+48601234567", metadata)

		assert.NotEqual(t, a, b)
	})

	t.Run("changes with recipient", func(t *testing.T) {
		a, _ := service.DeriveIdempotencyKey("reminder", "+48601234567", metadata)
		b, _ := service.DeriveIdempotencyKey("reminder", "+48601234568", metadata)

		assert.NotEqual(t, a, b)
	})

	t.Run("changes with metadata", func(t *testing.T) {
		a, _ := service.DeriveIdempotencyKey("reminder", "+48601234567", metadata)
		b, _ := service.DeriveIdempotencyKey("reminder", "+48601234567",
			map[string]any{"appointment_id": 8, "kind": "reminder_24h"})

		assert.NotEqual(t, a, b)
	})

	t.Run("handles nil metadata", func(t *testing.T) {
		a, err := service.DeriveIdempotencyKey("reminder", "+48601234567", nil)
		assert.NoError(t, err)
		assert.Len(t, a, 64)
	})
}
