package utils_test

import (
	"testing"
	"time"

	"github.com/SscSPs/polaris_reporting/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer_RoundTrip(t *testing.T) {
	s, err := utils.NewSealer("correct horse battery staple")
	require.NoError(t, err)

	plaintext := []byte(`{"step":"client-info","data":{"name":"شركة الأمل"}}`)
	sealed, err := s.Seal(plaintext)
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "client-info")

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, plaintext, opened)

	again, err := s.Seal(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "every seal uses a fresh nonce")
}

func TestSealer_OpenAcrossInstances(t *testing.T) {
	first, err := utils.NewSealer("secret")
	require.NoError(t, err)
	second, err := utils.NewSealer("secret")
	require.NoError(t, err)

	sealed, err := first.Seal([]byte("payload"))
	require.NoError(t, err)

	opened, err := second.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(opened))
}

func TestSealer_OpenRejectsBadInput(t *testing.T) {
	s, err := utils.NewSealer("secret")
	require.NoError(t, err)
	other, err := utils.NewSealer("another secret")
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("payload"))
	require.NoError(t, err)

	tampered := append([]byte(nil), sealed...)
	tampered[len(tampered)-1] ^= 0xff

	tests := []struct {
		name   string
		sealer *utils.Sealer
		input  []byte
	}{
		{"truncated", s, sealed[:10]},
		{"tampered", s, tampered},
		{"wrong secret", other, sealed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sealer.Open(tt.input)
			assert.ErrorIs(t, err, utils.ErrSealedDataInvalid)
		})
	}
}

func TestNewSealer_EmptySecret(t *testing.T) {
	_, err := utils.NewSealer("")
	assert.Error(t, err)
}

func TestChecksum(t *testing.T) {
	// sha256("abc") = ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223", utils.Checksum([]byte("abc")))
	assert.True(t, utils.VerifyChecksum([]byte("abc"), "ba7816bf8f01cfea414140de5dae2223"))
	assert.False(t, utils.VerifyChecksum([]byte("abd"), "ba7816bf8f01cfea414140de5dae2223"))
}

func TestAccessToken(t *testing.T) {
	token, err := utils.IssueAccessToken("client-42", "jwt-secret", time.Hour)
	require.NoError(t, err)

	claims, err := utils.ParseAccessToken(token, "jwt-secret")
	require.NoError(t, err)
	assert.Equal(t, "client-42", claims.Subject)

	_, err = utils.ParseAccessToken(token, "other-secret")
	assert.Error(t, err)

	expired, err := utils.IssueAccessToken("client-42", "jwt-secret", -time.Minute)
	require.NoError(t, err)
	_, err = utils.ParseAccessToken(expired, "jwt-secret")
	assert.Error(t, err)
}
