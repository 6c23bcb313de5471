// Package secrets handles encryption of sensitive records at rest. The
// profile row carries income, debt and savings figures, so it is stored as a
// Fernet token rather than plaintext JSON.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fernet/fernet-go"
)

// Keychain wraps a Fernet key loaded from (or generated at) a key file.
type Keychain struct {
	key *fernet.Key
}

// LoadKeychain reads the key file, generating a new key with restrictive
// permissions when none exists yet.
func LoadKeychain(keyPath string) (*Keychain, error) {
	data, err := os.ReadFile(keyPath)
	if os.IsNotExist(err) {
		return generateKeychain(keyPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}

	key, err := fernet.DecodeKey(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode key file: %w", err)
	}

	return &Keychain{key: key}, nil
}

func generateKeychain(keyPath string) (*Keychain, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(keyPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}

	// Owner read/write only: the key decrypts the user's financial profile.
	if err := os.WriteFile(keyPath, []byte(key.Encode()), 0o600); err != nil {
		return nil, fmt.Errorf("failed to write key file: %w", err)
	}

	return &Keychain{key: &key}, nil
}

// NewKeychain creates a keychain around a freshly generated in-memory key.
// Used by tests; production keys come from LoadKeychain.
func NewKeychain() (*Keychain, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return &Keychain{key: &key}, nil
}

// Encrypt seals the payload into a Fernet token.
func (k *Keychain) Encrypt(payload []byte) (string, error) {
	token, err := fernet.EncryptAndSign(payload, k.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt payload: %w", err)
	}
	return string(token), nil
}

// Decrypt opens a Fernet token. Tokens do not expire (ttl 0); the payload
// lives as long as the profile row.
func (k *Keychain) Decrypt(token string) ([]byte, error) {
	payload := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{k.key})
	if payload == nil {
		return nil, fmt.Errorf("payload verification failed")
	}
	return payload, nil
}
