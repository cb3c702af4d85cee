package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/big"
)

const (
	// KeyLength is the length of the external key handed to the user.
	KeyLength = 8

	// HashLength is the length of the hex-encoded SHA-256 lookup hash.
	HashLength = 64

	keyAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

	// At 36^8 possible keys a collision streak this long means the
	// store is pathologically full or the existence check is broken.
	maxKeyAttempts = 32
)

// ErrKeyspaceExhausted is returned when GenerateKey gives up after too
// many collisions against already stored hashes.
var ErrKeyspaceExhausted = errors.New("crypto: key space exhausted")

// ExistsFunc reports whether a note with the given lookup hash is
// already stored. Checked once per generation attempt, never cached.
type ExistsFunc func(hash string) (bool, error)

// GenerateKey mints a random external key that does not collide with any
// stored note. The key is the only credential a reader will ever hold;
// it is never persisted, only its hash is.
func GenerateKey(exists ExistsFunc) (string, error) {
	for attempt := 0; attempt < maxKeyAttempts; attempt++ {
		key, err := randomKey()
		if err != nil {
			return "", err
		}

		taken, err := exists(HashKey(key))
		if err != nil {
			return "", err
		}
		if !taken {
			return key, nil
		}
	}
	return "", ErrKeyspaceExhausted
}

// HashKey returns the hex-encoded SHA-256 digest of the external key.
// It is the storage lookup index and is never reversed.
func HashKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func randomKey() (string, error) {
	alphabetSize := big.NewInt(int64(len(keyAlphabet)))

	buf := make([]byte, KeyLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		buf[i] = keyAlphabet[n.Int64()]
	}
	return string(buf), nil
}
