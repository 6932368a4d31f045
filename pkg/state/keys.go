package state

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/scoutqa/scout/ent"
	"github.com/scoutqa/scout/ent/providercredential"
	"github.com/scoutqa/scout/pkg/models"
)

// Cipher seals and opens provider credential blobs with AES-256-GCM.
// The ciphertext stored in the database is nonce-prefixed.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher creates a Cipher from a 64-character hex-encoded 32-byte key.
func NewCipher(hexKey string) (*Cipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("credentials key is not valid hex: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("credentials key must be 32 bytes, got %d", len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to init cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to init GCM: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Seal encrypts plaintext, returning nonce||ciphertext.
func (c *Cipher) Seal(plaintext []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return c.aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a nonce-prefixed blob produced by Seal.
func (c *Cipher) Open(sealed []byte) ([]byte, error) {
	ns := c.aead.NonceSize()
	if len(sealed) < ns {
		return nil, fmt.Errorf("sealed blob too short")
	}
	plaintext, err := c.aead.Open(nil, sealed[:ns], sealed[ns:], nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt credentials: %w", err)
	}
	return plaintext, nil
}

// GetProviderKeys returns the team's decrypted provider API keys. A team with
// no stored credentials gets the zero value.
func (s *Store) GetProviderKeys(ctx context.Context, teamID string) (models.ProviderKeys, error) {
	var keys models.ProviderKeys
	if s.cipher == nil {
		return keys, fmt.Errorf("credential cipher not configured")
	}

	row, err := s.client.ProviderCredential.Query().
		Where(providercredential.IDEQ(teamID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return keys, nil
		}
		return keys, fmt.Errorf("failed to load provider credentials: %w", err)
	}

	plaintext, err := s.cipher.Open(row.Ciphertext)
	if err != nil {
		return keys, err
	}
	if err := json.Unmarshal(plaintext, &keys); err != nil {
		return keys, fmt.Errorf("failed to decode provider credentials: %w", err)
	}
	return keys, nil
}

// SetProviderKeys encrypts and upserts the team's provider API keys.
func (s *Store) SetProviderKeys(ctx context.Context, teamID string, keys models.ProviderKeys) error {
	if s.cipher == nil {
		return fmt.Errorf("credential cipher not configured")
	}

	plaintext, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("failed to encode provider credentials: %w", err)
	}
	sealed, err := s.cipher.Seal(plaintext)
	if err != nil {
		return err
	}

	n, err := s.client.ProviderCredential.Update().
		Where(providercredential.IDEQ(teamID)).
		SetCiphertext(sealed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to update provider credentials: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.client.ProviderCredential.Create().
		SetID(teamID).
		SetCiphertext(sealed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert provider credentials: %w", err)
	}
	return nil
}
