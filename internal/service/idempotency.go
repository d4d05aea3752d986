package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// DeriveIdempotencyKey computes the stable identity of a logical notification
// from its template key, recipient and metadata. encoding/json marshals map
// keys in sorted order, so equal metadata always hashes to the same key.
func DeriveIdempotencyKey(templateKey, recipient string, metadata map[string]any) (string, error) {
	canonical, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("failed to canonicalize metadata: %w", err)
	}

	h := sha256.New()
	h.Write([]byte(templateKey))
	h.Write([]byte{'\n'})
	h.Write([]byte(recipient))
	h.Write([]byte{'\n'})
	h.Write(canonical)

	return hex.EncodeToString(h.Sum(nil)), nil
}
