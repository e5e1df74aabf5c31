package crypto

import (
	"encoding/hex"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"

	"slcsp/internal/domain"
)

// fingerprintLen is the number of digest bytes kept (20 hex chars).
const fingerprintLen = 10

// Fingerprint returns a short hex fingerprint of b.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(b []byte) domain.Fingerprint {
	sum := blake2b.Sum256(b)
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintLen]))
}

// FingerprintFile streams the file at path through BLAKE2b-256 and returns
// the same short form as Fingerprint.
func FingerprintFile(path string) (domain.Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return domain.Fingerprint(hex.EncodeToString(h.Sum(nil)[:fingerprintLen])), nil
}
