package smsgateway

import "unicode/utf8"

type Encoding string

const (
	EncodingGSM7    Encoding = "GSM-7"
	EncodingUnicode Encoding = "UNICODE"
)

// Segment limits billed by providers: a message that fits in a single part
// may use the full single-part budget; once it spills over, every part loses
// room to the concatenation header.
const (
	gsm7SingleLimit    = 160
	gsm7PartLimit      = 153
	unicodeSingleLimit = 70
	unicodePartLimit   = 67
)

type Measurement struct {
	Length   int
	Parts    int
	Encoding Encoding
}

// Measure classifies the message as GSM-7 (every code point within the 7-bit
// range) or Unicode and computes its length and billable part count.
func Measure(message string) Measurement {
	encoding := EncodingGSM7
	for _, r := range message {
		if r > 0x7F {
			encoding = EncodingUnicode
			break
		}
	}

	length := utf8.RuneCountInString(message)

	singleLimit, partLimit := gsm7SingleLimit, gsm7PartLimit
	if encoding == EncodingUnicode {
		singleLimit, partLimit = unicodeSingleLimit, unicodePartLimit
	}

	parts := 1
	if length > singleLimit {
		parts = (length + partLimit - 1) / partLimit
	}

	return Measurement{Length: length, Parts: parts, Encoding: encoding}
}
