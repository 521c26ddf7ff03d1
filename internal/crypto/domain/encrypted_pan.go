package domain

import (
	"encoding/base64"
)

// EncryptedPAN is the textual form of an encrypted PAN as persisted by the
// mapping stores.
//
// Layout, before strict standard base64 encoding with padding:
//
//	+----------------------+--------------------------------+
//	| nonce (NonceSize)    | ciphertext || tag (Overhead)   |
//	+----------------------+--------------------------------+
//
// NonceSize and Overhead come from the AEAD that produced the blob. The split
// point is always exactly NonceSize: the nonce and the ciphertext never share bytes.
type EncryptedPAN string

// blobEncoding rejects non-zero padding bits, so every stored string has exactly one
// decoding and any edit to the text reaches the AEAD.
var blobEncoding = base64.StdEncoding.Strict()

// NewEncryptedPAN serializes a nonce and a sealed ciphertext into an EncryptedPAN.
func NewEncryptedPAN(nonce, sealed []byte) EncryptedPAN {
	raw := make([]byte, len(nonce)+len(sealed))
	copy(raw, nonce)
	copy(raw[len(nonce):], sealed)
	return EncryptedPAN(blobEncoding.EncodeToString(raw))
}

// Split decodes the blob and returns its nonce and sealed ciphertext.
// Returns ErrIntegrityCheckFailed when the blob is not valid base64 or is shorter
// than nonceSize+overhead.
func (e EncryptedPAN) Split(nonceSize, overhead int) (nonce, sealed []byte, err error) {
	raw, err := blobEncoding.DecodeString(string(e))
	if err != nil {
		return nil, nil, ErrIntegrityCheckFailed
	}
	if len(raw) < nonceSize+overhead {
		return nil, nil, ErrIntegrityCheckFailed
	}
	return raw[:nonceSize], raw[nonceSize:], nil
}

// String returns the encoded blob.
func (e EncryptedPAN) String() string {
	return string(e)
}
