package cardcrypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"
)

// Symmetric cipher parameters. The nonce and tag sizes are fixed by the wire
// format; changing either breaks interoperability with existing consumers.
const (
	// aesKeySize is the symmetric key size in bytes (AES-256).
	aesKeySize = 32

	// gcmNonceSize is the nonce size for AES-GCM (96 bits).
	gcmNonceSize = 12

	// gcmTagSize is the authentication tag size for GCM (128 bits).
	gcmTagSize = 16
)

// generateNonce draws a fresh 12-byte GCM nonce from random.
// Each draw is independent of the key draw.
func generateNonce(random io.Reader) ([]byte, error) {
	nonce := make([]byte, gcmNonceSize)
	if _, err := io.ReadFull(random, nonce); err != nil {
		return nil, fmt.Errorf("%w: failed to generate nonce: %v", ErrCipher, err)
	}
	return nonce, nil
}

// sealPayload encrypts plaintext with AES-256-GCM under key and nonce.
// No associated data is used. The returned bytes are the ciphertext followed
// by the 16-byte authentication tag, so the output is always
// len(plaintext)+16 bytes.
func sealPayload(plaintext, key, nonce []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// openPayload is the inverse of sealPayload. Returns ErrAuthentication if
// the tag does not verify, which also covers any tampering with the
// ciphertext or a mismatched nonce/key pairing.
func openPayload(sealed, key, nonce []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}
	return plaintext, nil
}

// newGCM builds the AEAD and validates the key and nonce sizes up front, so
// Seal never panics on a malformed input.
func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != aesKeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrCipher, aesKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipher, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipher, err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrCipher, gcm.NonceSize(), len(nonce))
	}
	return gcm, nil
}
