package domain

// Zero overwrites b in place. It is used on vault key bytes, decoded key material and
// PAN plaintext buffers once they are no longer needed.
func Zero(b []byte) {
	clear(b)
}
