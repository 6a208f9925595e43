// Package secrets generates and verifies the shared credentials that
// gate token issuance. Only the bcrypt hash of a credential is ever
// configured or stored; the plaintext lives with the calling system.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	dErrors "adcheck/pkg/domain-errors"
)

// Generate returns a fresh random credential, base64-encoded.
func Generate() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate credential: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Hash returns the bcrypt hash of a credential for configuration.
func Hash(credential string) (string, error) {
	if credential == "" {
		return "", dErrors.New(dErrors.CodeValidation, "credential is empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "credential is too long")
		}
		return "", fmt.Errorf("hash credential: %w", err)
	}
	return string(hashed), nil
}

// Verify checks a plaintext credential against its bcrypt hash. A
// mismatch is an unauthorized error, not an internal one.
func Verify(credential, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(credential)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid credential")
		}
		return fmt.Errorf("verify credential: %w", err)
	}
	return nil
}
