package assistant

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

var (
	// ErrTokenInvalid indicates a malformed, forged, or foreign pending-action token.
	ErrTokenInvalid = errors.New("invalid pending action token")
	// ErrTokenExpired indicates the step-up window has closed.
	ErrTokenExpired = errors.New("pending action token expired")
)

var b64 = base64.RawURLEncoding

// pendingClaims is the server-authored deferred action. The client carries it
// between the ask and the completion call but cannot alter it: the compact
// form is HMAC-signed, and completion trusts only what it verifies here.
type pendingClaims struct {
	Action   Intent   `json:"action"`
	Entities Entities `json:"entities,omitempty"`
	UserID   string   `json:"sub"`
	Exp      int64    `json:"exp"`
}

// TokenSigner signs and verifies pending-action tokens.
type TokenSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenSigner builds a signer with the given secret and validity window.
func NewTokenSigner(secret []byte, ttl time.Duration) *TokenSigner {
	return &TokenSigner{secret: secret, ttl: ttl, now: time.Now}
}

// Sign produces a compact payload.signature token for the deferred action.
func (s *TokenSigner) Sign(action Intent, entities Entities, userID string) (string, error) {
	claims := pendingClaims{
		Action:   action,
		Entities: entities,
		UserID:   userID,
		Exp:      s.now().Add(s.ttl).Unix(),
	}
	payload, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	encoded := b64.EncodeToString(payload)
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(encoded))
	return encoded + "." + b64.EncodeToString(mac.Sum(nil)), nil
}

// Verify checks the signature and expiry and returns the embedded claims.
func (s *TokenSigner) Verify(token string) (pendingClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return pendingClaims{}, ErrTokenInvalid
	}

	sig, err := b64.DecodeString(parts[1])
	if err != nil {
		return pendingClaims{}, ErrTokenInvalid
	}
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(parts[0]))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return pendingClaims{}, ErrTokenInvalid
	}

	payload, err := b64.DecodeString(parts[0])
	if err != nil {
		return pendingClaims{}, ErrTokenInvalid
	}
	var claims pendingClaims
	if err := json.Unmarshal(payload, &claims); err != nil {
		return pendingClaims{}, ErrTokenInvalid
	}

	if s.now().Unix() >= claims.Exp {
		return pendingClaims{}, ErrTokenExpired
	}
	return claims, nil
}
