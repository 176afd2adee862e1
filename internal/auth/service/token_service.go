package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/airmon/internal/auth/domain"
)

// tokenService implements TokenService using HMAC-SHA256 signatures.
type tokenService struct {
	signingKey     []byte
	issuer         string
	userTokenTTL   time.Duration
	deviceTokenTTL time.Duration
	codec          TokenCodec
	now            func() time.Time
}

// TokenServiceOption configures optional token service behavior.
type TokenServiceOption func(*tokenService)

// WithClock overrides the time source, used by tests to simulate expiry.
func WithClock(now func() time.Time) TokenServiceOption {
	return func(t *tokenService) {
		t.now = now
	}
}

// NewTokenService creates a new TokenService instance. The signing key is
// held immutably for the process lifetime and never serialized into tokens
// or logs.
func NewTokenService(
	signingKey []byte,
	issuer string,
	userTokenTTL time.Duration,
	deviceTokenTTL time.Duration,
	codec TokenCodec,
	opts ...TokenServiceOption,
) TokenService {
	t := &tokenService{
		signingKey:     signingKey,
		issuer:         issuer,
		userTokenTTL:   userTokenTTL,
		deviceTokenTTL: deviceTokenTTL,
		codec:          codec,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Issue stamps the timestamps and issuer into the claims, signs the encoded
// segments and returns the complete token string.
func (t *tokenService) Issue(claims domain.Claims, ttl time.Duration) (string, error) {
	now := t.now()
	claims.IssuedAt = now.Unix()
	claims.ExpiresAt = now.Add(ttl).Unix()
	claims.Issuer = t.issuer

	signingInput, err := t.codec.Encode(domain.NewHeader(), claims)
	if err != nil {
		return "", err
	}

	signature := t.sign(signingInput)
	return signingInput + "." + base64.RawURLEncoding.EncodeToString(signature), nil
}

// IssueDeviceToken issues a device-kind token with the fixed device TTL.
func (t *tokenService) IssueDeviceToken(deviceID uuid.UUID, hardwareID string) (string, error) {
	return t.Issue(domain.NewDeviceClaims(deviceID, hardwareID), t.deviceTokenTTL)
}

// Validate verifies the token structure, signature, expiry and issuer.
// Signature comparison is constant-time; the header algorithm must match
// the configured one before the signature is even checked.
func (t *tokenService) Validate(token string) (*domain.Claims, error) {
	decoded, err := t.codec.Decode(token)
	if err != nil {
		return nil, err
	}

	// Reject any algorithm other than the configured one (alg confusion).
	if decoded.Header.Alg != domain.TokenAlgorithm || decoded.Header.Typ != domain.TokenType {
		return nil, domain.ErrMalformedToken
	}

	expected := t.sign(decoded.SigningInput)
	if !hmac.Equal(decoded.Signature, expected) {
		return nil, domain.ErrSignatureMismatch
	}

	// Expiry comparisons use epoch seconds, not wall-clock strings.
	if decoded.Claims.ExpiresAt <= t.now().Unix() {
		return nil, domain.ErrTokenExpired
	}

	if decoded.Claims.Issuer != t.issuer {
		return nil, domain.ErrIssuerMismatch
	}

	claims := decoded.Claims
	return &claims, nil
}

// ValidateUserToken validates the token and rejects non-user kinds.
func (t *tokenService) ValidateUserToken(token string) (*domain.Claims, error) {
	claims, err := t.Validate(token)
	if err != nil {
		return nil, err
	}
	if claims.Kind != domain.TokenKindUser {
		return nil, domain.ErrWrongTokenKind
	}
	return claims, nil
}

// ValidateDeviceToken validates the token and rejects non-device kinds.
func (t *tokenService) ValidateDeviceToken(token string) (*domain.Claims, error) {
	claims, err := t.Validate(token)
	if err != nil {
		return nil, err
	}
	if claims.Kind != domain.TokenKindDevice {
		return nil, domain.ErrWrongTokenKind
	}
	return claims, nil
}

// Refresh re-issues a user token with the same identity claims and fresh
// timestamps. Device tokens are rejected with ErrWrongTokenKind.
func (t *tokenService) Refresh(token string) (string, error) {
	claims, err := t.ValidateUserToken(token)
	if err != nil {
		return "", err
	}

	fresh := domain.Claims{
		Subject:      claims.Subject,
		Email:        claims.Email,
		Role:         claims.Role,
		UniversityID: claims.UniversityID,
		Kind:         domain.TokenKindUser,
	}
	return t.Issue(fresh, t.userTokenTTL)
}

// sign computes the raw HMAC-SHA256 digest over the signing input.
func (t *tokenService) sign(signingInput string) []byte {
	mac := hmac.New(sha256.New, t.signingKey)
	mac.Write([]byte(signingInput))
	return mac.Sum(nil)
}
