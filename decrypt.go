package cardcrypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"fmt"
)

// Decrypt reverses Encrypt for the holder of the matching private key: it
// hex-decodes the envelope, parses the framing, unwraps the AES key with
// RSA-OAEP (SHA-256/MGF1-SHA-256), and opens the sealed payload with
// AES-256-GCM, returning the original card number.
//
// This is what the receiving party runs on an envelope produced by this
// engine or any compatible producer. Errors wrap ErrInvalidHex,
// ErrInvalidEnvelope, ErrKeyWrap, or ErrAuthentication.
func Decrypt(envelopeHex string, priv *rsa.PrivateKey) (string, error) {
	data, err := DecodeHex(envelopeHex)
	if err != nil {
		return "", err
	}

	env, err := parseEnvelope(data)
	if err != nil {
		return "", err
	}

	key, err := rsa.DecryptOAEP(sha256.New(), nil, priv, env.wrappedKey, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to unwrap key: %v", ErrKeyWrap, err)
	}
	defer clear(key)

	plaintext, err := openPayload(env.sealed, key, env.nonce)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}
