// Package idgen provides cryptographically random ID generation.
package idgen

import (
	"crypto/rand"
	"encoding/hex"
)

// refAlphabet matches the uppercase alphanumeric suffix used on displayed
// transaction references.
const refAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// TransactionRef generates a display reference like "TXN-K3F9X2A1B".
// Uniqueness is probabilistic only; references are never used as keys.
func TransactionRef() string {
	return "TXN-" + randomFrom(refAlphabet, 9)
}

// RequestID generates a random ID for request correlation.
func RequestID() string {
	return Hex(8)
}

// Hex generates a random hex string of the given byte length.
func Hex(numBytes int) string {
	b := make([]byte, numBytes)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(b)
}

func randomFrom(alphabet string, n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b)
}
