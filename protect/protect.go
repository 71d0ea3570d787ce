// Package protect offers hashing helpers for handing hardware identifiers
// to other systems without exposing the raw value: a salted one-way hash
// with embedded salt for storage and later verification, and an
// application-scoped keyed hash for cross-application isolation.
package protect

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/valentin-kaiser/hwident/apperror"
)

// saltLength is the number of random salt bytes prepended to the digest
const saltLength = 32

// SaltedHash hashes input with the given salt and returns the uppercase
// hex encoding of salt and digest concatenated, 128 hex characters in
// total. A nil salt is replaced by fresh random bytes, so two calls
// without a salt produce different output for the same input. Pass the
// salt recovered from a previous hash to reproduce it.
func SaltedHash(input string, salt []byte) (string, error) {
	if salt == nil {
		salt = make([]byte, saltLength)
		if _, err := rand.Read(salt); err != nil {
			return "", apperror.Wrap(err)
		}
	}

	digest := digestWithSalt(input, salt)

	combined := make([]byte, 0, len(salt)+len(digest))
	combined = append(combined, salt...)
	combined = append(combined, digest...)
	return strings.ToUpper(hex.EncodeToString(combined)), nil
}

// VerifySaltedHash reports whether hashed is a SaltedHash of input. The
// salt is recovered from the hash, the digest recomputed and the two hex
// strings compared without short-circuiting. The comparison is
// case-sensitive, a lowercased hash does not verify. Malformed hex or a
// missing salt prefix verify as false, never as an error or panic.
func VerifySaltedHash(input string, hashed string) bool {
	decoded, err := hex.DecodeString(hashed)
	if err != nil {
		return false
	}
	if len(decoded) < saltLength {
		return false
	}

	expected, err := SaltedHash(input, decoded[:saltLength])
	if err != nil {
		return false
	}
	return equalConstantTime([]byte(hashed), []byte(expected))
}

// digestWithSalt computes SHA-256 over the input bytes followed by the salt
func digestWithSalt(input string, salt []byte) []byte {
	h := sha256.New()
	h.Write([]byte(input))
	h.Write(salt)
	return h.Sum(nil)
}

// equalConstantTime compares two byte slices without short-circuiting on
// the first mismatch. Unequal lengths are immediately false.
func equalConstantTime(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}

// ProtectedID derives an application-scoped identifier from a machine
// identifier: HMAC-SHA256 keyed with the machine identifier over the
// application identifier, hex encoded. Applications sharing a machine get
// unrelated values and the machine identifier cannot be recovered from
// the result.
func ProtectedID(appID string, machineID string) (string, error) {
	if machineID == "" {
		return "", apperror.NewError("machine identifier must not be empty")
	}
	mac := hmac.New(sha256.New, []byte(machineID))
	mac.Write([]byte(appID))
	return hex.EncodeToString(mac.Sum(nil)), nil
}

// MayContainPII reports whether a component value looks like personally
// identifiable information. The current implementation is a placeholder
// that never matches, callers should treat serial numbers as sensitive
// regardless.
func MayContainPII(value string) bool {
	_ = value
	return false
}
