package assistant

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSignVerifyRoundtrip(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"), 5*time.Minute)

	entities := Entities{{Text: "Ramesh", Label: "B-PERSON"}}
	token, err := signer.Sign(IntentFundTransfer, entities, "user-1")
	require.NoError(t, err)

	claims, err := signer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, IntentFundTransfer, claims.Action)
	assert.Equal(t, "user-1", claims.UserID)
	require.Len(t, claims.Entities, 1)
	assert.Equal(t, "Ramesh", claims.Entities.Person())
}

func TestTokenRejectsTamperedPayload(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"), 5*time.Minute)

	token, err := signer.Sign(IntentBalanceInquiry, nil, "user-1")
	require.NoError(t, err)

	// Swap the payload for one claiming a different action; signature no longer matches.
	other, err := signer.Sign(IntentFundTransfer, nil, "user-1")
	require.NoError(t, err)
	forged := strings.Split(other, ".")[0] + "." + strings.Split(token, ".")[1]

	_, err = signer.Verify(forged)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"), 5*time.Minute)
	attacker := NewTokenSigner([]byte("other-secret"), 5*time.Minute)

	token, err := attacker.Sign(IntentBalanceInquiry, nil, "user-1")
	require.NoError(t, err)

	_, err = signer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenRejectsExpired(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"), time.Minute)
	signer.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	token, err := signer.Sign(IntentBalanceInquiry, nil, "user-1")
	require.NoError(t, err)

	signer.now = time.Now
	_, err = signer.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenRejectsGarbage(t *testing.T) {
	signer := NewTokenSigner([]byte("test-secret"), time.Minute)

	for _, token := range []string{"", "abc", "a.b.c", "not-base64!.sig"} {
		_, err := signer.Verify(token)
		assert.ErrorIsf(t, err, ErrTokenInvalid, "token %q", token)
	}
}
