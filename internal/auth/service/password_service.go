package service

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/airmon/internal/errors"
)

// passwordService implements PasswordService using Argon2id hashing.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// HashPassword hashes a plain text secret using Argon2id. The salt is
// randomized per call, so hashing the same secret twice produces
// distinct records.
func (s *passwordService) HashPassword(plainPassword string) (hashedPassword string, err error) {
	hashedPassword, err = s.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// VerifyPassword performs a constant-time comparison between a plain secret
// and its stored hash. Malformed records fail closed and return false.
func (s *passwordService) VerifyPassword(plainPassword string, hashedPassword string) bool {
	ok, err := s.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// GeneratePossessionToken creates a new cryptographically secure 32-byte
// random possession token for a device. The plain token is base64
// URL-encoded and only displayed once at registration time.
func (s *passwordService) GeneratePossessionToken() (plainToken string, hashedToken string, err error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate possession token")
	}

	plainToken = base64.URLEncoding.EncodeToString(randomBytes)

	hashedToken, err = s.HashPassword(plainToken)
	if err != nil {
		return "", "", err
	}

	return plainToken, hashedToken, nil
}

// NewPasswordService creates a new PasswordService instance using Argon2id.
// Uses the Moderate policy for a balance between security and performance.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &passwordService{
		hasher: hasher,
	}
}
