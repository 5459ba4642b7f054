package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/cmdline/pkg/ports"
)

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey encrypts new entries. Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys are tried when decryption with ActiveKey fails,
	// so keys can be rotated without losing history.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.HistoryStore
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that encrypts every history
// entry with AES-GCM. Each stored entry is the base64 of nonce and ciphertext.
func NewEncryptionMiddleware(config EncryptionConfig) (Middleware, error) {
	if len(config.ActiveKey) != 32 {
		return nil, fmt.Errorf("active key must be 32 bytes (AES-256), got %d", len(config.ActiveKey))
	}
	return func(next ports.HistoryStore) ports.HistoryStore {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}, nil
}

func (m *encryptionMiddleware) Save(ctx context.Context, key string, entries []string) error {
	sealed := make([]string, len(entries))
	for i, e := range entries {
		ciphertext, err := encrypt([]byte(e), m.config.ActiveKey)
		if err != nil {
			return fmt.Errorf("failed to encrypt history: %w", err)
		}
		sealed[i] = base64.StdEncoding.EncodeToString(ciphertext)
	}
	return m.next.Save(ctx, key, sealed)
}

// Load fails on any entry that does not decrypt: plain history is not
// silently accepted once encryption is configured.
func (m *encryptionMiddleware) Load(ctx context.Context, key string) ([]string, error) {
	sealed, err := m.next.Load(ctx, key)
	if err != nil {
		return nil, err
	}

	entries := make([]string, len(sealed))
	for i, s := range sealed {
		ciphertext, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return nil, fmt.Errorf("failed to decode history entry %d: %w", i, err)
		}
		plain, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt history entry %d: %w", i, err)
		}
		entries[i] = string(plain)
	}
	return entries, nil
}

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}
	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}
	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, ciphertext[gcm.NonceSize():], nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
