// Package signature authenticates webhook payloads against the shared
// HMAC secret carried in the X-Hub-Signature header.
package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"strings"

	"pr-webhook-service/internal/utils"
)

// Verifier checks HMAC-SHA1 payload signatures. The secret is injected
// at construction; the verifier never reads configuration mid-request.
type Verifier struct {
	secret string
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: secret}
}

// Verify validates the raw body against the signature header values.
// The header must be present exactly once, in the form
// "<algorithm>=<hex-digest>"; only the digest after the separator is
// compared. The presented digest is hex-decoded and compared against
// the computed MAC in constant time.
func (v *Verifier) Verify(body []byte, headerValues []string) error {
	if len(headerValues) != 1 {
		return utils.ErrMissingSignature
	}
	if v.secret == "" {
		return utils.ErrSecretNotConfigured
	}

	_, hexDigest, found := strings.Cut(headerValues[0], "=")
	if !found {
		return utils.ErrInvalidSignature
	}
	presented, err := hex.DecodeString(hexDigest)
	if err != nil {
		return utils.ErrInvalidSignature
	}

	mac := hmac.New(sha1.New, []byte(v.secret))
	mac.Write(body)
	expected := mac.Sum(nil)

	// hmac.Equal rejects unequal lengths before the data-independent
	// byte comparison, so timing never depends on digest content.
	if !hmac.Equal(presented, expected) {
		return utils.ErrInvalidSignature
	}
	return nil
}
