// Package cryptox provides the crypto primitives used by the auth flow:
// a keyed hash for email indexing, AES-GCM encryption for opaque client
// metadata blobs, and key derivation from configured string secrets.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"
)

// HashData computes a deterministic keyed hash (HMAC-SHA256) of data and
// returns it hex-encoded. The engine stores and searches accounts by
// HashData(lowercase(email), key) so raw emails are never used as lookup keys.
func HashData(data string, key []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// DeriveKey expands a configured string secret into a 32-byte key using
// HKDF-SHA256. The label separates keys derived from the same secret for
// different purposes.
func DeriveKey(secret, label string) ([]byte, error) {
	r := hkdf.New(sha256.New, []byte(secret), nil, []byte(label))
	key := make([]byte, 32)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, err
	}
	return key, nil
}

// EncryptMetaData encrypts an opaque metadata blob using AES-GCM.
//
// The key must be a valid AES key length (16, 24, or 32 bytes). A new random
// 12-byte nonce is generated for each encryption. The ciphertext and nonce
// are returned separately and stored in separate columns.
func EncryptMetaData(plaintext, key []byte) (ciphertext, nonce []byte, err error) {

	// nonce
	nonce = make([]byte, 12)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	// new cypher
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, err
	}

	// encrypting
	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)

	return ciphertext, nonce, nil
}

// DecryptMetaData decrypts a blob produced by EncryptMetaData.
//
// The key must be the same AES key that was used to encrypt the data, and
// the nonce must be the 12-byte nonce generated during encryption. A wrong
// key or a tampered ciphertext fails GCM authentication and returns an
// error rather than silently accepted corrupted plaintext.
func DecryptMetaData(ciphertext, nonce, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return aesgcm.Open(nil, nonce, ciphertext, nil)
}
