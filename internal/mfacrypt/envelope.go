// Package mfacrypt protects TOTP seeds at rest.
//
// Seeds are stored as a small JSON envelope {"iv": hex, "encryptedData": hex}
// produced by AES-256-CBC with PKCS#7 padding. The format is shared with the
// historical deployment, so existing rows decrypt unchanged. The 256-bit key
// is supplied out-of-band as 64 hex characters.
package mfacrypt

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/happytails/happytails/internal/logger"
)

// fallbackKeyHex is the publicly known example key used when no key is
// configured. Matches the historical deployment so that development
// databases remain readable. Never acceptable in production.
const fallbackKeyHex = "abcdef1234567890abcdef1234567890abcdef1234567890abcdef1234567890"

// envelope is the serialized form of one encryption: a random IV and the
// ciphertext, both hex-encoded.
type envelope struct {
	IV            string `json:"iv"`
	EncryptedData string `json:"encryptedData"`
}

// Codec encrypts and decrypts TOTP seeds with a fixed 256-bit key.
// Safe for concurrent use; all state is read-only after construction.
type Codec struct {
	key []byte
}

// NewCodec builds a Codec from the hex-encoded key.
//
// An empty keyHex selects the insecure example key and logs a warning — the
// process keeps running, but every envelope it writes is readable by anyone
// with the public fallback key. A non-empty key that does not decode to
// exactly 32 bytes fails with [ErrMisconfiguredKey].
func NewCodec(keyHex string, log *logger.Logger) (*Codec, error) {
	if keyHex == "" {
		log.Warn().Msg("MFA encryption key is not configured, falling back to the insecure example key; do not run this in production")
		keyHex = fallbackKeyHex
	}

	if len(keyHex) != 64 {
		log.Error().Int("len", len(keyHex)).Msg("MFA encryption key must be 64 hex characters")
		return nil, ErrMisconfiguredKey
	}

	key, err := hex.DecodeString(keyHex)
	if err != nil {
		log.Err(err).Msg("MFA encryption key is not valid hex")
		return nil, ErrMisconfiguredKey
	}

	return &Codec{key: key}, nil
}

// Encrypt seals the plaintext seed into a fresh envelope.
//
// Every call draws a new random 16-byte IV; two encryptions of the same seed
// never share an IV.
func (c *Codec) Encrypt(plainSeed string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMisconfiguredKey, err)
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plainSeed), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	sealed, err := json.Marshal(envelope{
		IV:            hex.EncodeToString(iv),
		EncryptedData: hex.EncodeToString(ciphertext),
	})
	if err != nil {
		return "", fmt.Errorf("marshal envelope: %w", err)
	}

	return string(sealed), nil
}

// Decrypt opens an envelope produced by [Codec.Encrypt].
//
// A malformed envelope, wrong key or corrupted ciphertext all fail with
// [ErrDecryptionFailed]; no partial plaintext is ever surfaced.
func (c *Codec) Decrypt(sealed string) (string, error) {
	var env envelope
	if err := json.Unmarshal([]byte(sealed), &env); err != nil {
		return "", fmt.Errorf("%w: unmarshal envelope: %w", ErrDecryptionFailed, err)
	}

	iv, err := hex.DecodeString(env.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %w", ErrDecryptionFailed, err)
	}

	ciphertext, err := hex.DecodeString(env.EncryptedData)
	if err != nil {
		return "", fmt.Errorf("%w: decode ciphertext: %w", ErrDecryptionFailed, err)
	}

	if len(iv) != aes.BlockSize || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("%w: malformed envelope", ErrDecryptionFailed)
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMisconfiguredKey, err)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		// Bad padding almost always means a wrong key or tampered data.
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return string(unpadded), nil
}

// pkcs7Pad appends PKCS#7 padding up to a multiple of blockSize.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad strips and validates PKCS#7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length: %d", len(data))
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, fmt.Errorf("invalid padding byte: %d", padding)
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, fmt.Errorf("inconsistent padding")
		}
	}

	return data[:len(data)-padding], nil
}
