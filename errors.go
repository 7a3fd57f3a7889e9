package cardcrypto

import "errors"

var (
	// ErrInvalidInput is returned when the card number or public key text is
	// missing or blank.
	ErrInvalidInput = errors.New("cardcrypto: invalid input")

	// ErrKeyFormat is returned when the public key hex does not decode or the
	// decoded bytes are not a structurally valid RSA public key.
	ErrKeyFormat = errors.New("cardcrypto: invalid public key format")

	// ErrCipher is returned when the AEAD primitive rejects its inputs or the
	// random source fails.
	ErrCipher = errors.New("cardcrypto: cipher operation failed")

	// ErrKeyWrap is returned when RSA-OAEP cannot wrap the symmetric key,
	// e.g. the key exceeds the modulus's OAEP capacity.
	ErrKeyWrap = errors.New("cardcrypto: key wrap failed")

	// ErrUnexpected is the catch-all for failures outside the taxonomy above.
	ErrUnexpected = errors.New("cardcrypto: unexpected error")

	// ErrInvalidHex is returned when hex input has odd length or contains a
	// non-hex character.
	ErrInvalidHex = errors.New("cardcrypto: invalid hex input")

	// ErrInvalidEnvelope is returned when an envelope buffer is truncated or
	// a declared field length exceeds the remaining buffer.
	ErrInvalidEnvelope = errors.New("cardcrypto: invalid envelope format")

	// ErrAuthentication is returned when the GCM tag does not verify during
	// decryption (wrong key, wrong nonce, or tampered ciphertext).
	ErrAuthentication = errors.New("cardcrypto: payload authentication failed")
)

// IsInvalidInput returns true if the error is or wraps ErrInvalidInput.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsKeyFormat returns true if the error is or wraps ErrKeyFormat.
func IsKeyFormat(err error) bool {
	return errors.Is(err, ErrKeyFormat)
}

// IsCipher returns true if the error is or wraps ErrCipher.
func IsCipher(err error) bool {
	return errors.Is(err, ErrCipher)
}

// IsKeyWrap returns true if the error is or wraps ErrKeyWrap.
func IsKeyWrap(err error) bool {
	return errors.Is(err, ErrKeyWrap)
}

// IsInvalidHex returns true if the error is or wraps ErrInvalidHex.
func IsInvalidHex(err error) bool {
	return errors.Is(err, ErrInvalidHex)
}

// IsInvalidEnvelope returns true if the error is or wraps ErrInvalidEnvelope.
func IsInvalidEnvelope(err error) bool {
	return errors.Is(err, ErrInvalidEnvelope)
}

// IsAuthentication returns true if the error is or wraps ErrAuthentication.
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// Category identifies the failure class of an encryption error.
type Category string

// Failure categories reported by the engine.
const (
	CategoryNone         Category = ""
	CategoryInvalidInput Category = "invalid_input"
	CategoryKeyFormat    Category = "key_format"
	CategoryCipher       Category = "cipher"
	CategoryKeyWrap      Category = "key_wrap"
	CategoryUnexpected   Category = "unexpected"
)

// CategoryOf classifies err into the engine's failure taxonomy.
// A nil error maps to CategoryNone; anything unclassified maps to
// CategoryUnexpected.
func CategoryOf(err error) Category {
	switch {
	case err == nil:
		return CategoryNone
	case errors.Is(err, ErrInvalidInput):
		return CategoryInvalidInput
	case errors.Is(err, ErrKeyFormat), errors.Is(err, ErrInvalidHex):
		return CategoryKeyFormat
	case errors.Is(err, ErrCipher):
		return CategoryCipher
	case errors.Is(err, ErrKeyWrap):
		return CategoryKeyWrap
	default:
		return CategoryUnexpected
	}
}
