package crypt

import (
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
)

// KeySize is the size in bytes of the raw symmetric key material
const KeySize = 32

// Key is the transmissible text form of a symmetric key: KeySize random
// bytes in base64url encoding. The base64url alphabet contains no '|',
// so a well-formed key can never collide with the envelope delimiter.
type Key string

// Bytes returns the key in its wire byte form
func (k Key) Bytes() []byte {
	return []byte(k)
}

// --------------------------------------------------------------------------
// Cipher Interface
// --------------------------------------------------------------------------

// ICipher is the symmetric encryption capability used for the text
// message of an exchange. Implementations must guarantee that
// Decrypt(Encrypt(t, k), k) == t for every generated key k.
type ICipher interface {
	// GenerateKey creates a new random key
	GenerateKey() (Key, error)
	// Encrypt encrypts the plaintext under the given key
	Encrypt(plaintext string, key Key) ([]byte, error)
	// Decrypt recovers the plaintext from a ciphertext produced by Encrypt
	Decrypt(ciphertext []byte, key Key) (string, error)
}

// --------------------------------------------------------------------------
// XChaCha20-Poly1305 Implementation
// --------------------------------------------------------------------------

// NewXChaCha20Cipher creates a new cipher using XChaCha20-Poly1305.
// Ciphertext layout: 24 byte random nonce || AEAD ciphertext+tag.
func NewXChaCha20Cipher() ICipher {
	return &xChaCha20CipherImpl{}
}

// xChaCha20CipherImpl implements the ICipher interface using the
// XChaCha20-Poly1305 AEAD from golang.org/x/crypto
type xChaCha20CipherImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see crypt.ICipher)
// --------------------------------------------------------------------------

func (c xChaCha20CipherImpl) GenerateKey() (Key, error) {
	raw := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("failed to generate key material: %v", err)
	}
	return Key(base64.RawURLEncoding.EncodeToString(raw)), nil
}

func (c xChaCha20CipherImpl) Encrypt(plaintext string, key Key) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}

	// Random nonce, prepended to the ciphertext
	nonce := make([]byte, chacha20poly1305.NonceSizeX, chacha20poly1305.NonceSizeX+len(plaintext)+aead.Overhead())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %v", err)
	}

	return aead.Seal(nonce, nonce, []byte(plaintext), nil), nil
}

func (c xChaCha20CipherImpl) Decrypt(ciphertext []byte, key Key) (string, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	if len(ciphertext) < chacha20poly1305.NonceSizeX+aead.Overhead() {
		return "", fmt.Errorf("ciphertext too short: %d bytes", len(ciphertext))
	}

	nonce := ciphertext[:chacha20poly1305.NonceSizeX]
	plaintext, err := aead.Open(nil, nonce, ciphertext[chacha20poly1305.NonceSizeX:], nil)
	if err != nil {
		return "", fmt.Errorf("decryption failed: %v", err)
	}

	return string(plaintext), nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// newAEAD decodes the key text form and creates the AEAD instance
func newAEAD(key Key) (cipher.AEAD, error) {
	raw, err := base64.RawURLEncoding.DecodeString(string(key))
	if err != nil {
		return nil, fmt.Errorf("invalid key encoding: %v", err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("invalid key length: %d bytes (expected %d)", len(raw), KeySize)
	}
	return chacha20poly1305.NewX(raw)
}
