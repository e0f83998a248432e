// Package cipher implements the payload codec the aggregator requires:
// AES-256-CBC with PKCS#7 padding over the UTF-8 JSON text, Base64 as the
// transport encoding. The IV is the first 16 bytes of the shared secret,
// which means every message encrypted under one key reuses the same IV.
// That is a property of the existing wire contract, kept for
// compatibility; it is not a recommended construction.
package cipher

import (
	"bytes"
	"crypto/aes"
	aescipher "crypto/cipher"
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/ravindrauiet/fastag-bajaj-api-sub001/fastag"
)

const keyLength = 32

// PayloadCipher encrypts outbound envelopes and decrypts response bodies
// with one static key/IV pair. Safe for concurrent use; it holds no
// mutable state.
type PayloadCipher struct {
	key []byte
	iv  []byte
}

// New builds a PayloadCipher from the 32-character shared secret. The IV
// is derived from the same secret, so both sides only exchange one value.
func New(secret string) (*PayloadCipher, error) {
	if len(secret) != keyLength {
		return nil, fmt.Errorf("encryption key must be %d bytes, got %d", keyLength, len(secret))
	}
	key := []byte(secret)
	return &PayloadCipher{key: key, iv: key[:aes.BlockSize]}, nil
}

// Encrypt turns plaintext into the Base64 transport string.
func (c *PayloadCipher) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", &fastag.EncryptionError{Op: "encrypt", Err: err}
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, len(padded))

	mode := aescipher.NewCBCEncrypter(block, c.iv)
	mode.CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt is the inverse of Encrypt. Malformed ciphertext, bad padding
// and non-UTF8 plaintext all come back as a DecryptionError so callers
// can recover; a key mismatch must never look like a valid response.
func (c *PayloadCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", &fastag.DecryptionError{Op: "decrypt", Err: fmt.Errorf("transport decode: %w", err)}
	}
	if len(raw) == 0 || len(raw)%aes.BlockSize != 0 {
		return "", &fastag.DecryptionError{Op: "decrypt", Err: fmt.Errorf("ciphertext length %d is not a block multiple", len(raw))}
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", &fastag.DecryptionError{Op: "decrypt", Err: err}
	}

	plain := make([]byte, len(raw))
	mode := aescipher.NewCBCDecrypter(block, c.iv)
	mode.CryptBlocks(plain, raw)

	plain, err = pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", &fastag.DecryptionError{Op: "decrypt", Err: err}
	}
	if !utf8.Valid(plain) {
		return "", &fastag.DecryptionError{Op: "decrypt", Err: fmt.Errorf("plaintext is not valid UTF-8")}
	}

	return string(plain), nil
}

func pkcs7Pad(src []byte, blockSize int) []byte {
	padLen := blockSize - (len(src) % blockSize)
	if padLen == 0 {
		padLen = blockSize
	}
	return append(src, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(src []byte, blockSize int) ([]byte, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("empty plaintext")
	}
	pad := int(src[len(src)-1])
	if pad <= 0 || pad > blockSize || pad > len(src) {
		return nil, fmt.Errorf("invalid padding")
	}
	for i := 0; i < pad; i++ {
		if src[len(src)-1-i] != byte(pad) {
			return nil, fmt.Errorf("invalid padding")
		}
	}
	return src[:len(src)-pad], nil
}
