package cardcrypto

import (
	"bytes"
	"testing"
)

func TestEncodeHex(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	if got := EncodeHex(data); got != "0123456789ABCDEF" {
		t.Errorf("EncodeHex: got %q, want %q", got, "0123456789ABCDEF")
	}
}

func TestEncodeHexEmpty(t *testing.T) {
	if got := EncodeHex(nil); got != "" {
		t.Errorf("EncodeHex(nil): got %q, want empty", got)
	}
	if got := EncodeHex([]byte{}); got != "" {
		t.Errorf("EncodeHex(empty): got %q, want empty", got)
	}
}

func TestEncodeHexLength(t *testing.T) {
	for _, n := range []int{1, 7, 32, 308} {
		data := make([]byte, n)
		if got := len(EncodeHex(data)); got != 2*n {
			t.Errorf("EncodeHex length for %d bytes: got %d, want %d", n, got, 2*n)
		}
	}
}

func TestDecodeHex(t *testing.T) {
	want := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

	got, err := DecodeHex("0123456789ABCDEF")
	if err != nil {
		t.Fatalf("DecodeHex: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("DecodeHex: got %x, want %x", got, want)
	}
}

func TestDecodeHexLowercase(t *testing.T) {
	want := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}

	// Decode accepts lowercase even though encode only emits uppercase.
	got, err := DecodeHex("0123456789abcdef")
	if err != nil {
		t.Fatalf("DecodeHex lowercase: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("DecodeHex lowercase: got %x, want %x", got, want)
	}
}

func TestDecodeHexEmpty(t *testing.T) {
	got, err := DecodeHex("")
	if err != nil {
		t.Fatalf("DecodeHex empty: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("DecodeHex empty: got %d bytes, want 0", len(got))
	}
}

func TestDecodeHexOddLength(t *testing.T) {
	_, err := DecodeHex("ABC")
	if !IsInvalidHex(err) {
		t.Errorf("expected ErrInvalidHex for odd length, got %v", err)
	}
}

func TestDecodeHexInvalidCharacters(t *testing.T) {
	for _, in := range []string{"GG", "0x12", "12 4", "INVALID_HEX!", "ZZZZ"} {
		if _, err := DecodeHex(in); !IsInvalidHex(err) {
			t.Errorf("DecodeHex(%q): expected ErrInvalidHex, got %v", in, err)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	original := make([]byte, 256)
	for i := range original {
		original[i] = byte(i)
	}

	decoded, err := DecodeHex(EncodeHex(original))
	if err != nil {
		t.Fatalf("DecodeHex: %v", err)
	}
	if !bytes.Equal(decoded, original) {
		t.Error("hex round trip mismatch")
	}
}
