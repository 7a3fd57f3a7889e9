package cardcrypto

import (
	"bytes"
	"strings"
	"testing"
)

func FuzzDecodeHex(f *testing.F) {
	f.Add("")
	f.Add("0123456789ABCDEF")
	f.Add("deadbeef")
	f.Add("ABC")
	f.Add("INVALID_HEX")

	f.Fuzz(func(t *testing.T, s string) {
		decoded, err := DecodeHex(s)
		if err != nil {
			if !IsInvalidHex(err) {
				t.Errorf("DecodeHex(%q): unexpected error type %v", s, err)
			}
			return
		}
		// Re-encoding normalizes case but must preserve the value.
		if got := EncodeHex(decoded); got != strings.ToUpper(s) {
			t.Errorf("DecodeHex(%q) then EncodeHex: got %q", s, got)
		}
	})
}

func FuzzHexRoundTrip(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00, 0xFF, 0x10})

	f.Fuzz(func(t *testing.T, data []byte) {
		decoded, err := DecodeHex(EncodeHex(data))
		if err != nil {
			t.Fatalf("round trip failed: %v", err)
		}
		if !bytes.Equal(decoded, data) {
			t.Errorf("round trip mismatch: got %x, want %x", decoded, data)
		}
	})
}

func FuzzParseEnvelope(f *testing.F) {
	f.Add([]byte{})
	f.Add(frameEnvelope(make([]byte, gcmNonceSize), make([]byte, 32), make([]byte, 256)))
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF})

	f.Fuzz(func(t *testing.T, data []byte) {
		env, err := parseEnvelope(data)
		if err != nil {
			if !IsInvalidEnvelope(err) {
				t.Errorf("parseEnvelope: unexpected error type %v", err)
			}
			return
		}
		// Anything that parses must re-frame to the identical buffer.
		if got := frameEnvelope(env.nonce, env.sealed, env.wrappedKey); !bytes.Equal(got, data) {
			t.Errorf("re-framed envelope differs from input: got %x, want %x", got, data)
		}
	})
}
