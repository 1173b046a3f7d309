// Package secret encrypts small values at rest (for example SMTP credentials
// kept in the settings table) with AES-256-GCM.
//
// Stored form is the Prefix followed by base64 of
//
//	[0..1]  uint16 version
//	[2..13] 12-byte nonce
//	[14..]  ciphertext + tag
//
// The caller-provided scope is bound as associated data, so a value encrypted
// for one setting key cannot be decrypted under another.
package secret

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prefix marks an encrypted value.
const Prefix = "enc:"

const (
	version   uint16 = 1
	nonceSize        = 12
	keySize          = 32
)

var (
	// ErrInvalidKeyLength indicates the key is not 32 bytes.
	ErrInvalidKeyLength = errors.New("secret: invalid key length")
	// ErrNotEncrypted indicates the value does not carry the Prefix.
	ErrNotEncrypted = errors.New("secret: value is not encrypted")
	// ErrCiphertextTooShort indicates a truncated ciphertext.
	ErrCiphertextTooShort = errors.New("secret: ciphertext too short")
	// ErrUnsupportedVersion indicates an unknown ciphertext version.
	ErrUnsupportedVersion = errors.New("secret: unsupported ciphertext version")
	// ErrDecryptFailed indicates a wrong key, wrong scope or tampered value.
	ErrDecryptFailed = errors.New("secret: decrypt failed")
)

// Cipher encrypts and decrypts string values bound to a scope.
type Cipher interface {
	Encrypt(plaintext, scope string) (string, error)
	Decrypt(stored, scope string) (string, error)
}

// AESGCM implements Cipher.
type AESGCM struct {
	aead cipher.AEAD
}

// NewAESGCM builds a cipher from a 32-byte key.
func NewAESGCM(key []byte) (*AESGCM, error) {
	if len(key) != keySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeyLength, len(key), keySize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("secret: aes init failed: %w", err)
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("secret: gcm init failed: %w", err)
	}

	return &AESGCM{aead: aead}, nil
}

// IsEncrypted reports whether v carries the Prefix.
func IsEncrypted(v string) bool {
	return strings.HasPrefix(v, Prefix)
}

// Encrypt returns Prefix + base64(ciphertext). Empty and already encrypted
// values are returned unchanged.
func (c *AESGCM) Encrypt(plaintext, scope string) (string, error) {
	if plaintext == "" || IsEncrypted(plaintext) {
		return plaintext, nil
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("secret: nonce generation failed: %w", err)
	}

	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), scopeAAD(scope))

	out := make([]byte, 2+nonceSize+len(sealed))
	binary.BigEndian.PutUint16(out[0:2], version)
	copy(out[2:2+nonceSize], nonce)
	copy(out[2+nonceSize:], sealed)

	return Prefix + base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt.
func (c *AESGCM) Decrypt(stored, scope string) (string, error) {
	if !IsEncrypted(stored) {
		return "", ErrNotEncrypted
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(stored, Prefix))
	if err != nil {
		return "", ErrDecryptFailed
	}
	if len(raw) < 2+nonceSize+1 {
		return "", ErrCiphertextTooShort
	}
	if v := binary.BigEndian.Uint16(raw[0:2]); v != version {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	plain, err := c.aead.Open(nil, raw[2:2+nonceSize], raw[2+nonceSize:], scopeAAD(scope))
	if err != nil {
		return "", ErrDecryptFailed
	}

	return string(plain), nil
}

func scopeAAD(scope string) []byte {
	sum := sha256.Sum256([]byte("scope=" + scope + "\n"))
	return sum[:]
}
