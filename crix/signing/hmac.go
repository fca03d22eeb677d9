// Package signing implements the CRIX request authentication scheme:
// an HMAC-SHA256 digest of the request body, keyed with the API secret,
// transmitted next to the API token in the X-Api-Signed-Token header.
package signing

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Header is the authentication header name expected by the exchange.
const Header = "X-Api-Signed-Token"

// Sign returns the lowercase hex HMAC-SHA256 of payload keyed with secret.
// payload must be the exact bytes that go on the wire; signing a
// re-serialized equivalent breaks verification on key order or whitespace.
func Sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// HeaderValue builds the X-Api-Signed-Token value: "<token>,<signature>".
func HeaderValue(token, secret string, payload []byte) string {
	return token + "," + Sign([]byte(secret), payload)
}
