package smsgateway_test

import (
	"strings"
	"testing"

	"github.com/Behyna/sms-services/dispatcher/pkg/smsgateway"
	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		length   int
		parts    int
		encoding smsgateway.Encoding
	}{
		{
			name:     "short ascii message is a single GSM-7 part",
			message:  "Your appointment is confirmed.",
			length:   30,
			parts:    1,
			encoding: smsgateway.EncodingGSM7,
		},
		{
			name:     "160 ascii characters still fit one part",
			message:  strings.Repeat("a", 160),
			length:   160,
			parts:    1,
			encoding: smsgateway.EncodingGSM7,
		},
		{
			name:     "161 ascii characters spill into two parts",
			message:  strings.Repeat("a", 161),
			length:   161,
			parts:    2,
			encoding: smsgateway.EncodingGSM7,
		},
		{
			name:     "307 ascii characters need three parts",
			message:  strings.Repeat("a", 307),
			length:   307,
			parts:    3,
			encoding: smsgateway.EncodingGSM7,
		},
		{
			name:     "one non-ascii rune switches the whole message to unicode",
			message:  "ł" + strings.Repeat("a", 69),
			length:   70,
			parts:    1,
			encoding: smsgateway.EncodingUnicode,
		},
		{
			name:     "71 unicode characters spill into two parts",
			message:  "ł" + strings.Repeat("a", 70),
			length:   71,
			parts:    2,
			encoding: smsgateway.EncodingUnicode,
		},
		{
			name:     "empty message is one empty GSM-7 part",
			message:  "",
			length:   0,
			parts:    1,
			encoding: smsgateway.EncodingGSM7,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := smsgateway.Measure(tt.message)

			assert.Equal(t, tt.length, m.Length)
			assert.Equal(t, tt.parts, m.Parts)
			assert.Equal(t, tt.encoding, m.Encoding)
		})
	}
}
