package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// checksumLength is the number of hex characters kept from the SHA-256 digest.
const checksumLength = 32

// Checksum returns the truncated hex SHA-256 digest of data, as stamped on every stored
// pipeline payload.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:checksumLength]
}

// VerifyChecksum reports whether data matches a checksum produced by Checksum.
func VerifyChecksum(data []byte, checksum string) bool {
	return Checksum(data) == checksum
}
