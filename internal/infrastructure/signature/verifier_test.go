package signature_test

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"pr-webhook-service/internal/infrastructure/signature"
	"pr-webhook-service/internal/utils"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return "sha1=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifier_Verify(t *testing.T) {
	const secret = "SUPERS3CR3T"
	body := []byte("hello_world")

	tests := []struct {
		name    string
		secret  string
		body    []byte
		headers []string
		wantErr error
	}{
		{
			name:    "valid signature",
			secret:  secret,
			body:    body,
			headers: []string{sign(body, secret)},
		},
		{
			name:    "known vector",
			secret:  secret,
			body:    body,
			headers: []string{"sha1=51633b546c869c7de65ce2f44d0c5eb49c0e5101"},
		},
		{
			name:    "wrong secret",
			secret:  secret,
			body:    body,
			headers: []string{sign(body, "other")},
			wantErr: utils.ErrInvalidSignature,
		},
		{
			name:    "missing header",
			secret:  secret,
			body:    body,
			headers: nil,
			wantErr: utils.ErrMissingSignature,
		},
		{
			name:    "repeated header",
			secret:  secret,
			body:    body,
			headers: []string{sign(body, secret), sign(body, secret)},
			wantErr: utils.ErrMissingSignature,
		},
		{
			name:    "no separator",
			secret:  secret,
			body:    body,
			headers: []string{"51633b546c869c7de65ce2f44d0c5eb49c0e5101"},
			wantErr: utils.ErrInvalidSignature,
		},
		{
			name:    "digest is not hex",
			secret:  secret,
			body:    body,
			headers: []string{"sha1=zzzzb546c869c7de65ce2f44d0c5eb49c0e5101"},
			wantErr: utils.ErrInvalidSignature,
		},
		{
			name:    "truncated digest",
			secret:  secret,
			body:    body,
			headers: []string{"sha1=51633b54"},
			wantErr: utils.ErrInvalidSignature,
		},
		{
			name:    "secret not configured",
			secret:  "",
			body:    body,
			headers: []string{sign(body, secret)},
			wantErr: utils.ErrSecretNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := signature.NewVerifier(tt.secret)
			err := v.Verify(tt.body, tt.headers)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

// Every single-byte corruption of a valid signature must be rejected.
func TestVerifier_Verify_FlippedBytes(t *testing.T) {
	const secret = "SUPERS3CR3T"
	body := []byte(`{"action":"opened","number":42}`)
	valid := sign(body, secret)
	v := signature.NewVerifier(secret)

	require.NoError(t, v.Verify(body, []string{valid}))

	digestStart := len("sha1=")
	for i := digestStart; i < len(valid); i++ {
		corrupted := []byte(valid)
		if corrupted[i] == '0' {
			corrupted[i] = '1'
		} else {
			corrupted[i] = '0'
		}
		err := v.Verify(body, []string{string(corrupted)})
		require.ErrorIs(t, err, utils.ErrInvalidSignature, "flipped byte at %d", i)
	}
}

func TestVerifier_Verify_BodyTamper(t *testing.T) {
	const secret = "SUPERS3CR3T"
	body := []byte(`{"action":"opened"}`)
	sig := sign(body, secret)
	v := signature.NewVerifier(secret)

	tampered := []byte(`{"action":"closed"}`)
	require.ErrorIs(t, v.Verify(tampered, []string{sig}), utils.ErrInvalidSignature)
}
