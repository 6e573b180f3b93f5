package systest

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Keystream is a reproducible stand-in for the kernel entropy pool: a ChaCha20
// keystream keyed by a seed. Its Getrandom has the same shape as Calls.Getrandom.
type Keystream struct {
	cipher *chacha20.Cipher
}

// NewKeystream returns the keystream for seed.
func NewKeystream(seed uint64) *Keystream {
	var key [chacha20.KeySize]byte
	var nonce [chacha20.NonceSize]byte
	binary.LittleEndian.PutUint64(key[:], seed)

	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// key and nonce sizes are fixed above
		panic(err)
	}
	return &Keystream{cipher: c}
}

// Getrandom fills p with the next len(p) keystream bytes.
func (k *Keystream) Getrandom(p []byte) (int, error) {
	clear(p)
	k.cipher.XORKeyStream(p, p)
	return len(p), nil
}
