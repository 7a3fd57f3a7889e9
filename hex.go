package cardcrypto

import "fmt"

// hexDigits is the uppercase alphabet used for encoding. Consumers of the
// wire format expect uppercase; decoding accepts either case.
const hexDigits = "0123456789ABCDEF"

// EncodeHex converts bytes to an uppercase hexadecimal string.
// The output is always exactly twice the input length; empty input yields
// an empty string.
func EncodeHex(data []byte) string {
	out := make([]byte, len(data)*2)
	for i, b := range data {
		out[i*2] = hexDigits[b>>4]
		out[i*2+1] = hexDigits[b&0x0F]
	}
	return string(out)
}

// DecodeHex converts a hexadecimal string to bytes. Both uppercase and
// lowercase digits are accepted. Returns ErrInvalidHex if the input has odd
// length or contains a character outside [0-9A-Fa-f].
func DecodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %d", ErrInvalidHex, len(s))
	}

	out := make([]byte, len(s)/2)
	for i := range out {
		hi, ok := hexDigitValue(s[i*2])
		if !ok {
			return nil, fmt.Errorf("%w: invalid character at position %d", ErrInvalidHex, i*2)
		}
		lo, ok := hexDigitValue(s[i*2+1])
		if !ok {
			return nil, fmt.Errorf("%w: invalid character at position %d", ErrInvalidHex, i*2+1)
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexDigitValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
