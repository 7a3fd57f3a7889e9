package cardcrypto

import (
	"encoding/binary"
	"fmt"
)

// Envelope layout:
//
//	u32_be(len(nonce)) | nonce | u32_be(len(sealed)) | sealed | wrappedKey
//
// The wrapped key carries no length prefix; it is always the last field and
// spans the remainder of the buffer. Field order and the unprefixed tail are
// fixed: existing consumers parse this layout bit for bit.
// lenPrefixSize is the size of each big-endian length prefix.
const lenPrefixSize = 4

// envelope holds the three parsed fields of the binary envelope.
type envelope struct {
	nonce      []byte
	sealed     []byte // ciphertext followed by the 16-byte GCM tag
	wrappedKey []byte
}

// frameEnvelope concatenates nonce, sealed payload, and wrapped key into one
// self-describing buffer. The format nominally allows any nonce length even
// though the engine always writes 12 bytes.
func frameEnvelope(nonce, sealed, wrappedKey []byte) []byte {
	buf := make([]byte, 0, lenPrefixSize+len(nonce)+lenPrefixSize+len(sealed)+len(wrappedKey))
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(nonce)))
	buf = append(buf, nonce...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(sealed)))
	buf = append(buf, sealed...)
	buf = append(buf, wrappedKey...)
	return buf
}

// parseEnvelope is the inverse of frameEnvelope. Returns ErrInvalidEnvelope
// if the buffer is shorter than its headers or a declared length exceeds the
// remaining bytes. All returned slices are defensive copies, safe from
// caller mutation of data.
func parseEnvelope(data []byte) (*envelope, error) {
	offset := 0

	nonce, offset, err := readPrefixedField(data, offset, "nonce")
	if err != nil {
		return nil, err
	}

	sealed, offset, err := readPrefixedField(data, offset, "sealed payload")
	if err != nil {
		return nil, err
	}

	wrappedKey := append([]byte(nil), data[offset:]...)
	return &envelope{nonce: nonce, sealed: sealed, wrappedKey: wrappedKey}, nil
}

// readPrefixedField reads a 4-byte big-endian length followed by that many
// bytes, returning a copy of the field and the next offset.
func readPrefixedField(data []byte, offset int, name string) ([]byte, int, error) {
	if len(data)-offset < lenPrefixSize {
		return nil, 0, fmt.Errorf("%w: buffer too short for %s length", ErrInvalidEnvelope, name)
	}
	fieldLen := binary.BigEndian.Uint32(data[offset : offset+lenPrefixSize])
	offset += lenPrefixSize

	if uint64(fieldLen) > uint64(len(data)-offset) {
		return nil, 0, fmt.Errorf("%w: declared %s length %d exceeds remaining %d bytes",
			ErrInvalidEnvelope, name, fieldLen, len(data)-offset)
	}

	field := append([]byte(nil), data[offset:offset+int(fieldLen)]...)
	return field, offset + int(fieldLen), nil
}
