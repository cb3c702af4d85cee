// Package crypto implements the note encryption core: external key
// generation, lookup hashing and authenticated encryption of note
// content.
//
// Content is encrypted with AES-256-GCM under a key derived from the
// user's password concatenated with the note's external key. The
// external key therefore doubles as an encryption secret: whoever holds
// the share link can decrypt, whoever only holds the database cannot.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
)

// ErrDecryption is returned on any decryption failure: wrong password,
// corrupted ciphertext or a nonce/tag that does not authenticate. The
// cases are deliberately indistinguishable to the caller.
var ErrDecryption = errors.New("crypto: decryption failed")

const nonceSize = 12

// Encrypt seals plaintext with AES-256-GCM. A fresh random 12-byte
// nonce is generated per call and prepended to the returned ciphertext.
// An empty password is valid; the key is then derived from the note key
// alone.
func Encrypt(plaintext []byte, password, noteKey string) ([]byte, error) {
	aesgcm, err := newGCM(password, noteKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	// Seal appends to the nonce so the result is nonce || ciphertext.
	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Decrypt splits the nonce off data and opens the remainder. It returns
// ErrDecryption whenever authentication fails, regardless of the cause.
func Decrypt(data []byte, password, noteKey string) ([]byte, error) {
	if len(data) < nonceSize {
		return nil, ErrDecryption
	}

	aesgcm, err := newGCM(password, noteKey)
	if err != nil {
		return nil, err
	}

	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryption
	}
	return plaintext, nil
}

func newGCM(password, noteKey string) (cipher.AEAD, error) {
	key := sha256.Sum256([]byte(password + noteKey))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
