package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

func CreateSHA256Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// IdempotencyKey joins parts with a separator that cannot appear in ids and
// hashes the result, so the same parts always produce the same key.
func IdempotencyKey(parts ...string) string {
	return CreateSHA256Hash([]byte(strings.Join(parts, "\x00")))
}
