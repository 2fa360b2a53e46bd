// Package cryptox holds the digest helpers shared by the challenge
// authenticator and the script integrity endpoints. Both algorithms are
// fixed by the wire protocol: SHA-512 for auth proofs, SHA-256 for script
// content hashes, always rendered as lowercase hex without separators.
package cryptox

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
)

// SHA512Hex returns the SHA-512 digest of data as a 128-character
// lowercase hex string.
func SHA512Hex(data []byte) string {
	sum := sha512.Sum512(data)
	return hex.EncodeToString(sum[:])
}

// SHA256Hex returns the SHA-256 digest of data as a 64-character
// lowercase hex string.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
