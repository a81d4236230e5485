// Package secrets generates the secret material declared by the platform
// catalog.
//
// Values are produced in-process from crypto/rand; writing them into the
// cluster is left to the secret-provisioning jobs downstream.
package secrets

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	"github.com/reefctl/reef/internal/platform"
)

const (
	// passwordAlphabet excludes ambiguous characters (0/O, 1/l/I).
	passwordAlphabet = "abcdefghijkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	// DefaultPasswordLength is the length of generated passwords.
	DefaultPasswordLength = 32

	// DefaultKeyBytes is the number of random bytes in generated hex keys.
	DefaultKeyBytes = 32
)

// Password generates a random password of the given length from the
// password alphabet.
func Password(length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("password length must be at least 1, got %d", length)
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}

// HexKey generates a hex-encoded random key of the given byte length.
func HexKey(bytes int) (string, error) {
	if bytes < 1 {
		return "", fmt.Errorf("key length must be at least 1 byte, got %d", bytes)
	}

	buf := make([]byte, bytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash returns the bcrypt hash of a password, suitable for basic-auth
// credential entries.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Material holds the generated values for one secret spec.
type Material struct {
	Spec   platform.SecretSpec
	Values map[string]string
}

// Generate produces values for every key of every spec, in order. A
// password-hash key hashes the "password" key of the same secret and
// requires it to be declared first.
func Generate(specs []platform.SecretSpec) ([]Material, error) {
	out := make([]Material, 0, len(specs))

	for _, spec := range specs {
		m := Material{Spec: spec, Values: make(map[string]string, len(spec.Keys))}

		for _, key := range spec.Keys {
			var (
				value string
				err   error
			)

			switch key.Kind {
			case platform.KindPassword:
				value, err = Password(DefaultPasswordLength)
			case platform.KindHexKey:
				value, err = HexKey(DefaultKeyBytes)
			case platform.KindPasswordHash:
				password, ok := m.Values["password"]
				if !ok {
					return nil, fmt.Errorf("secret %s: key %s requires a password key declared before it",
						spec.Name, key.Name)
				}
				value, err = Hash(password)
			default:
				return nil, fmt.Errorf("secret %s: unknown key kind %q", spec.Name, key.Kind)
			}

			if err != nil {
				return nil, fmt.Errorf("secret %s: %w", spec.Name, err)
			}
			m.Values[key.Name] = value
		}

		out = append(out, m)
	}

	return out, nil
}
