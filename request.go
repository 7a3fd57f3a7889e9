package cardcrypto

import "fmt"

// Request carries the inputs for one card number encryption.
type Request struct {
	// RSAPublicKeyHex is the recipient's public key as a hex-encoded
	// SubjectPublicKeyInfo structure.
	RSAPublicKeyHex string

	// CardNumber is the clear card number to protect. The engine performs no
	// Luhn or format validation beyond requiring a non-blank value.
	CardNumber string
}

// String renders the request with the card number masked to its last four
// digits and the key truncated, safe for logging.
func (r Request) String() string {
	key := r.RSAPublicKeyHex
	if len(key) > 20 {
		key = key[:20] + "..."
	}
	masked := "****"
	if n := len(r.CardNumber); n >= 4 {
		masked = "****" + r.CardNumber[n-4:]
	}
	return fmt.Sprintf("Request{RSAPublicKeyHex: %q, CardNumber: %q}", key, masked)
}

// Response is the outcome of one card number encryption. Either Success is
// true and EncryptedDataHex holds the hex-encoded envelope, or Success is
// false and Category and ErrorMessage describe the failure. There is no
// partial success.
type Response struct {
	Success          bool
	EncryptedDataHex string
	Category         Category
	ErrorMessage     string
}

// SuccessResponse builds a successful Response around the encrypted payload.
func SuccessResponse(encryptedDataHex string) Response {
	return Response{Success: true, EncryptedDataHex: encryptedDataHex}
}

// FailureResponse builds a failed Response from err, classifying it into the
// engine's failure taxonomy.
func FailureResponse(err error) Response {
	return Response{Category: CategoryOf(err), ErrorMessage: err.Error()}
}

// String renders the response with the payload truncated.
func (r Response) String() string {
	data := r.EncryptedDataHex
	if len(data) > 40 {
		data = data[:40] + "..."
	}
	return fmt.Sprintf("Response{Success: %t, EncryptedDataHex: %q, Category: %q, ErrorMessage: %q}",
		r.Success, data, r.Category, r.ErrorMessage)
}
