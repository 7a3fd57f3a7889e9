package cardcrypto

import (
	"context"
	"testing"
)

func TestDecryptInvalidHex(t *testing.T) {
	priv, _ := testKeyPair(t, 2048)

	_, err := Decrypt("NOT HEX", priv)
	if !IsInvalidHex(err) {
		t.Errorf("expected ErrInvalidHex, got %v", err)
	}
}

func TestDecryptTruncatedEnvelope(t *testing.T) {
	priv, pubHex := testKeyPair(t, 2048)
	e := testEngine(t)

	out, err := e.Encrypt(context.Background(), Request{RSAPublicKeyHex: pubHex, CardNumber: testCardNumber})
	if err != nil {
		t.Fatal(err)
	}

	// Cut into the sealed field's declared length.
	_, err = Decrypt(out[:40], priv)
	if !IsInvalidEnvelope(err) {
		t.Errorf("expected ErrInvalidEnvelope, got %v", err)
	}
}

func TestDecryptWrongPrivateKey(t *testing.T) {
	_, pubHex := testKeyPair(t, 2048)
	otherPriv, _ := testKeyPair(t, 2048)
	e := testEngine(t)

	out, err := e.Encrypt(context.Background(), Request{RSAPublicKeyHex: pubHex, CardNumber: testCardNumber})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Decrypt(out, otherPriv); !IsKeyWrap(err) {
		t.Errorf("expected ErrKeyWrap for wrong private key, got %v", err)
	}
}

func TestDecryptTamperedPayload(t *testing.T) {
	priv, pubHex := testKeyPair(t, 2048)
	e := testEngine(t)

	out, err := e.Encrypt(context.Background(), Request{RSAPublicKeyHex: pubHex, CardNumber: testCardNumber})
	if err != nil {
		t.Fatal(err)
	}

	// Flip one bit inside the sealed field (after the two headers and nonce).
	decoded, err := DecodeHex(out)
	if err != nil {
		t.Fatal(err)
	}
	decoded[4+gcmNonceSize+4] ^= 0x01

	if _, err := Decrypt(EncodeHex(decoded), priv); !IsAuthentication(err) {
		t.Errorf("expected ErrAuthentication for tampered payload, got %v", err)
	}
}

func TestDecryptTamperedNonce(t *testing.T) {
	priv, pubHex := testKeyPair(t, 2048)
	e := testEngine(t)

	out, err := e.Encrypt(context.Background(), Request{RSAPublicKeyHex: pubHex, CardNumber: testCardNumber})
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := DecodeHex(out)
	if err != nil {
		t.Fatal(err)
	}
	decoded[4] ^= 0x01 // first nonce byte

	if _, err := Decrypt(EncodeHex(decoded), priv); !IsAuthentication(err) {
		t.Errorf("expected ErrAuthentication for tampered nonce, got %v", err)
	}
}
