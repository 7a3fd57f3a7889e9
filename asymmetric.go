package cardcrypto

import (
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"io"
)

// ParsePublicKey decodes a hex-encoded SubjectPublicKeyInfo structure into
// an RSA public key. Returns ErrKeyFormat if the hex does not decode, the
// DER does not parse, or the key is not RSA. Key strength is not validated
// beyond structural decodability.
func ParsePublicKey(publicKeyHex string) (*rsa.PublicKey, error) {
	der, err := DecodeHex(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
	}

	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyFormat, err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: expected RSA key, got %T", ErrKeyFormat, pub)
	}
	return rsaPub, nil
}

// maxWrapSize returns the largest payload OAEP with SHA-256 can wrap under
// pub: modulus bytes minus 2*hLen+2. A 2048-bit modulus gives 190 bytes, so
// a 32-byte key fits any supported modulus.
func maxWrapSize(pub *rsa.PublicKey) int {
	return pub.Size() - 2*sha256.Size - 2
}

// wrapKey encrypts the symmetric key bytes under pub with RSA-OAEP.
//
// rsa.EncryptOAEP derives the MGF1 hash from the supplied hash, so passing
// SHA-256 yields the SHA-256/MGF1-SHA-256 pairing that standard-conforming
// consumers require. The label is empty. The output length always equals the
// modulus size in bytes.
func wrapKey(key []byte, pub *rsa.PublicKey, random io.Reader) ([]byte, error) {
	if max := maxWrapSize(pub); len(key) > max {
		return nil, fmt.Errorf("%w: %d-byte key exceeds %d-byte OAEP capacity of %d-bit modulus",
			ErrKeyWrap, len(key), max, pub.Size()*8)
	}

	wrapped, err := rsa.EncryptOAEP(sha256.New(), random, pub, key, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyWrap, err)
	}
	return wrapped, nil
}
