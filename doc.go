// Package cardcrypto protects payment card numbers for transport to the
// holder of an RSA key pair using hybrid (envelope) encryption.
//
// Each call to Engine.Encrypt generates a fresh AES-256 key and 96-bit GCM
// nonce, seals the card number's UTF-8 bytes with AES-256-GCM, wraps the AES
// key under the recipient's public key with RSA-OAEP (SHA-256 main hash and
// MGF1-SHA-256), and frames the pieces into a single self-describing buffer:
//
//	u32_be(len(nonce)) | nonce | u32_be(len(sealed)) | sealed | wrappedKey
//
// The sealed field is ciphertext followed by the 16-byte GCM tag. The wrapped
// key carries no length prefix; it is always the last field and spans the
// remainder of the buffer. The framed buffer is returned as uppercase hex.
//
// Usage:
//
//	engine, err := cardcrypto.NewEngine()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp := engine.EncryptCardNumber(ctx, cardcrypto.Request{
//	    RSAPublicKeyHex: publicKeyHex, // hex-encoded SubjectPublicKeyInfo
//	    CardNumber:      "4532123456789012",
//	})
//	if resp.Success {
//	    // resp.EncryptedDataHex holds the hex-encoded envelope
//	}
//
// The engine is stateless and safe for concurrent use; every call owns its
// key, nonce, and buffers end to end.
package cardcrypto
