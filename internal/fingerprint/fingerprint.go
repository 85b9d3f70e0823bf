// Package fingerprint derives compact display identifiers from public keys.
//
// A fingerprint is for recognising a key at a glance. It carries no security
// weight: verdicts come from the signature and inclusion checks.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	suffixLength  = 4
	addressLength = 8

	addressPrefix = "0x"
)

// Fingerprint is the display identity derived from a public key.
type Fingerprint struct {
	Suffix  string `json:"fingerprint"` // last 4 lowercase hex characters of the key digest
	Address string `json:"address"`     // "0x" followed by the last 8 lowercase hex characters of the key digest
}

// Derive hashes the UTF-8 bytes of publicKey with SHA-256 and returns the
// suffix and address taken from the tail of the lowercase hex digest.
// It is pure and deterministic; an empty key yields the digest of no bytes.
func Derive(publicKey string) Fingerprint {
	sum := sha256.Sum256([]byte(publicKey))
	digest := hex.EncodeToString(sum[:])

	return Fingerprint{
		Suffix:  digest[len(digest)-suffixLength:],
		Address: addressPrefix + digest[len(digest)-addressLength:],
	}
}
