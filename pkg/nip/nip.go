// Package nip validates Polish tax identification numbers.
package nip

import "errors"

var ErrFormat = errors.New("FORMAT_ERROR")
var ErrChecksum = errors.New("CHECKSUM_ERROR")

var weights = [9]int{6, 5, 7, 2, 3, 4, 5, 6, 7}

// Validate checks a 10-digit NIP. Non-digit characters or a wrong length
// yield ErrFormat; a digit string with a bad control digit yields ErrChecksum.
func Validate(value string) error {
	if len(value) != 10 {
		return ErrFormat
	}

	var digits [10]int
	for i := 0; i < 10; i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return ErrFormat
		}
		digits[i] = int(c - '0')
	}

	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}

	control := sum % 11
	if control == 10 || control != digits[9] {
		return ErrChecksum
	}

	return nil
}
