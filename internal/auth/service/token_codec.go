package service

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/allisson/airmon/internal/auth/domain"
	apperrors "github.com/allisson/airmon/internal/errors"
)

// tokenCodec implements TokenCodec using compact JSON and unpadded
// base64url segments.
type tokenCodec struct{}

// NewTokenCodec creates a new TokenCodec instance.
func NewTokenCodec() TokenCodec {
	return &tokenCodec{}
}

// Encode serializes the header and claims and returns the unsigned
// "headerPart.claimsPart" string.
func (c *tokenCodec) Encode(header domain.Header, claims domain.Claims) (string, error) {
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode token header")
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to encode token claims")
	}

	return encodeSegment(headerJSON) + "." + encodeSegment(claimsJSON), nil
}

// Decode splits the token into its three segments and decodes each one.
// The signature is returned raw and unverified.
func (c *tokenCodec) Decode(token string) (*DecodedToken, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, domain.ErrMalformedToken
	}

	headerJSON, err := decodeSegment(parts[0])
	if err != nil {
		return nil, domain.ErrMalformedToken
	}

	claimsJSON, err := decodeSegment(parts[1])
	if err != nil {
		return nil, domain.ErrMalformedToken
	}

	signature, err := decodeSegment(parts[2])
	if err != nil {
		return nil, domain.ErrMalformedToken
	}

	var header domain.Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return nil, domain.ErrMalformedToken
	}

	var claims domain.Claims
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, domain.ErrMalformedToken
	}

	return &DecodedToken{
		Header:       header,
		Claims:       claims,
		Signature:    signature,
		SigningInput: parts[0] + "." + parts[1],
	}, nil
}

// encodeSegment base64url-encodes data without padding.
func encodeSegment(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// decodeSegment base64url-decodes a segment, tolerating trailing padding
// that some clients append.
func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
