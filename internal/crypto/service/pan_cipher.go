package service

import (
	cryptoDomain "github.com/allisson/panvault/internal/crypto/domain"
)

// PANCipherService implements PANCipher over a single AEAD built from the vault key.
//
// Blob layout is described on cryptoDomain.EncryptedPAN. The nonce and tag sizes are
// read from the AEAD when the service is created. Safe for concurrent use.
type PANCipherService struct {
	aead      AEAD
	nonceSize int
	overhead  int
}

// NewPANCipher builds the cipher for alg from key. The key bytes are copied into the
// underlying primitive, so key may be closed afterwards.
func NewPANCipher(
	aeadManager AEADManager,
	key *cryptoDomain.VaultKey,
	alg cryptoDomain.Algorithm,
) (*PANCipherService, error) {
	if key == nil {
		return nil, cryptoDomain.ErrVaultKeyNotSet
	}
	if err := alg.Validate(); err != nil {
		return nil, err
	}

	aead, err := aeadManager.CreateCipher(key.Bytes(), alg)
	if err != nil {
		return nil, err
	}

	return &PANCipherService{
		aead:      aead,
		nonceSize: aead.NonceSize(),
		overhead:  aead.Overhead(),
	}, nil
}

// Encrypt seals pan and returns base64(nonce || ciphertext || tag).
func (p *PANCipherService) Encrypt(pan []byte) (cryptoDomain.EncryptedPAN, error) {
	sealed, nonce, err := p.aead.Encrypt(pan, nil)
	if err != nil {
		return "", err
	}
	return cryptoDomain.NewEncryptedPAN(nonce, sealed), nil
}

// Decrypt splits blob at the nonce size and opens the remainder.
func (p *PANCipherService) Decrypt(blob cryptoDomain.EncryptedPAN) ([]byte, error) {
	nonce, sealed, err := blob.Split(p.nonceSize, p.overhead)
	if err != nil {
		return nil, err
	}

	plaintext, err := p.aead.Decrypt(sealed, nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrIntegrityCheckFailed
	}
	return plaintext, nil
}
