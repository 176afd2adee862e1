package service

import (
	"context"
	"encoding/base64"

	"gocloud.dev/secrets"

	apperrors "github.com/allisson/airmon/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// LoadSigningKey resolves the token signing key from configuration.
//
// When kmsKeyURI is empty the configured value is used as the raw key.
// Otherwise the value is treated as base64 ciphertext wrapped by the KMS
// key and is unwrapped through a gocloud.dev secrets keeper. Supported
// URIs: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func LoadSigningKey(ctx context.Context, signingKey string, kmsKeyURI string) ([]byte, error) {
	if signingKey == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "token signing key is not configured")
	}

	if kmsKeyURI == "" {
		return []byte(signingKey), nil
	}

	keeper, err := secrets.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to open KMS keeper")
	}
	defer keeper.Close()

	ciphertext, err := base64.StdEncoding.DecodeString(signingKey)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "signing key is not valid base64 ciphertext")
	}

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to unwrap signing key")
	}

	return plaintext, nil
}
