package domain

import (
	"encoding/hex"
	"log/slog"
	"strings"
)

const redacted = "[REDACTED]"

// VaultKey holds the single symmetric key used to encrypt every PAN.
//
// It is built once at process start and handed to the cipher constructor. The key
// bytes never leave this value through fmt or slog: String, GoString and LogValue
// all redact.
type VaultKey struct {
	key []byte
}

// NewVaultKey copies raw into a new VaultKey. raw must be KeySize bytes.
func NewVaultKey(raw []byte) (*VaultKey, error) {
	if len(raw) != KeySize {
		return nil, ErrInvalidKeySize
	}
	key := make([]byte, KeySize)
	copy(key, raw)
	return &VaultKey{key: key}, nil
}

// ParseVaultKey decodes a hex-encoded key as produced by the create-vault-key command.
func ParseVaultKey(encoded string) (*VaultKey, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, ErrVaultKeyNotSet
	}

	raw, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, ErrInvalidKeyEncoding
	}
	defer Zero(raw)

	return NewVaultKey(raw)
}

// Bytes returns the key material. Callers must not retain or modify the slice.
func (k *VaultKey) Bytes() []byte {
	return k.key
}

// Close zeroes the key material.
func (k *VaultKey) Close() {
	Zero(k.key)
}

// String implements fmt.Stringer without exposing the key.
func (k *VaultKey) String() string {
	return redacted
}

// GoString implements fmt.GoStringer without exposing the key.
func (k *VaultKey) GoString() string {
	return redacted
}

// LogValue implements slog.LogValuer without exposing the key.
func (k *VaultKey) LogValue() slog.Value {
	return slog.StringValue(redacted)
}
