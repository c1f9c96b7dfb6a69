package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	saltSize = 16

	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
)

// ErrSealedDataInvalid is returned when a sealed blob is truncated, was sealed under a
// different secret or has been tampered with.
var ErrSealedDataInvalid = errors.New("sealed data is invalid")

// Sealer encrypts payloads at rest with XChaCha20-Poly1305 under a key derived from a
// passphrase with Argon2id.
//
// Layout of a sealed blob: salt | nonce | ciphertext. New blobs reuse the salt picked
// when the Sealer was created so the key is derived once per process; keys for other
// salts are derived on first use and cached.
type Sealer struct {
	secret []byte
	salt   []byte

	mu   sync.Mutex
	keys map[string][]byte
}

// NewSealer creates a Sealer for the given passphrase.
func NewSealer(secret string) (*Sealer, error) {
	if secret == "" {
		return nil, fmt.Errorf("sealing secret must not be empty")
	}
	salt, err := randomBytes(saltSize)
	if err != nil {
		return nil, err
	}
	return &Sealer{
		secret: []byte(secret),
		salt:   salt,
		keys:   make(map[string][]byte),
	}, nil
}

// Seal encrypts plaintext.
func (s *Sealer) Seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(s.key(s.salt))
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	nonce, err := randomBytes(aead.NonceSize())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, saltSize+len(nonce)+len(plaintext)+aead.Overhead())
	out = append(out, s.salt...)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, plaintext, s.salt), nil
}

// Open decrypts a blob produced by Seal.
func (s *Sealer) Open(sealed []byte) ([]byte, error) {
	if len(sealed) < saltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, ErrSealedDataInvalid
	}
	salt := sealed[:saltSize]
	nonce := sealed[saltSize : saltSize+chacha20poly1305.NonceSizeX]
	ciphertext := sealed[saltSize+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.key(salt))
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, salt)
	if err != nil {
		return nil, ErrSealedDataInvalid
	}
	return plaintext, nil
}

func (s *Sealer) key(salt []byte) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()

	if k, ok := s.keys[string(salt)]; ok {
		return k
	}
	k := argon2.IDKey(s.secret, salt, argonTime, argonMemory, argonThreads, chacha20poly1305.KeySize)
	s.keys[string(salt)] = k
	return k
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}
