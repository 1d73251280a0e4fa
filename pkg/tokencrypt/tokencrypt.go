// Package tokencrypt encrypts provider access tokens at rest with AES-GCM.
//
// Ciphertexts are "base64(nonce):base64(sealed)". Values without a colon are
// treated as legacy plaintext and returned unchanged by Decrypt.
package tokencrypt

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	KeySize        = 32
	KeyringService = "habitgrid"
)

var ErrMalformed = errors.New("malformed encrypted token")

type Cipher struct {
	aead cipher.AEAD
}

func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("token key must be %d bytes, got %d", KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

func (c *Cipher) Encrypt(token string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}
	sealed := c.aead.Seal(nil, nonce, []byte(token), nil)
	return base64.StdEncoding.EncodeToString(nonce) + ":" + base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *Cipher) Decrypt(enc string) (string, error) {
	if !strings.Contains(enc, ":") {
		return enc, nil
	}
	nonceB64, sealedB64, _ := strings.Cut(enc, ":")
	nonce, err := base64.StdEncoding.DecodeString(nonceB64)
	if err != nil || len(nonce) != c.aead.NonceSize() {
		return "", ErrMalformed
	}
	sealed, err := base64.StdEncoding.DecodeString(sealedB64)
	if err != nil {
		return "", ErrMalformed
	}
	plain, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("decrypting token: %w", err)
	}
	return string(plain), nil
}

// KeyFromBase64 decodes a key given in configuration.
func KeyFromBase64(s string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding token key: %w", err)
	}
	return key, nil
}

// KeyFromKeyring returns the key kept in the OS keyring under user, generating
// and storing a new one on first use.
func KeyFromKeyring(user string) ([]byte, error) {
	stored, err := keyring.Get(KeyringService, user)
	if err == nil {
		return KeyFromBase64(stored)
	}
	if !errors.Is(err, keyring.ErrNotFound) {
		return nil, fmt.Errorf("reading token key from keyring: %w", err)
	}
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := keyring.Set(KeyringService, user, base64.StdEncoding.EncodeToString(key)); err != nil {
		return nil, fmt.Errorf("storing token key in keyring: %w", err)
	}
	return key, nil
}
