package signer

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// Sign returns the hex-encoded HMAC-SHA512 of bytes under secret. This is the
// scheme the payment gateway uses for IPN callback signatures.
func Sign(bytes []byte, secret []byte) string {
	hmac := hmac.New(sha512.New, secret)
	hmac.Write(bytes)
	dataHmac := hmac.Sum(nil)
	hmacHex := hex.EncodeToString(dataHmac)
	return hmacHex
}

// Verify compares a received hex signature against the expected one for body
// in constant time.
func Verify(body []byte, secret []byte, signature string) bool {
	expected := Sign(body, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
