package smsgateway_test

import (
	"testing"

	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecipient(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"keeps clean number", "+48601234567", "+48601234567"},
		{"strips spaces", "+48 601 234 567", "+48601234567"},
		{"strips dashes", "+48-601-234-567", "+48601234567"},
		{"strips surrounding whitespace", "  +48601234567\t", "+48601234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, smsgateway.NormalizeRecipient(tt.input))
		})
	}
}

func TestValidateRecipient(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{"polish mobile", "+48601234567", true},
		{"us number", "+12025550123", true},
		{"missing plus", "48601234567", false},
		{"leading zero after plus", "+0601234567", false},
		{"too short", "+48601", false},
		{"too long", "+4860123456789012345", false},
		{"letters", "+4860123456a", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, smsgateway.ValidateRecipient(tt.input))
		})
	}
}
