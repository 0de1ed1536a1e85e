// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the development wallet's key chain: Argon2id
// key derivation, Ed25519 accounts and DAG-style addresses.
package crypto

import (
	"crypto/ed25519"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/argon2"
)

const (
	addressPrefix  = "DAG"
	addressTailLen = 36

	// signedDataPrefix domain-separates wallet signatures from any other
	// use of the same key.
	signedDataPrefix = "\x19Constellation Signed Data:\n"
)

// account is one derived key pair.
type account struct {
	address string
	private ed25519.PrivateKey
	public  ed25519.PublicKey
}

// keyChain is the private implementation of [KeyChain].
type keyChain struct {
	// Argon2id tuning parameters.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8

	accounts []account
	index    map[string]int
}

// Option adjusts key derivation.
type Option func(*keyChain)

// WithArgonParams overrides the Argon2id cost parameters. Lower values are
// meant for tests only.
func WithArgonParams(time, memoryKiB uint32, threads uint8) Option {
	return func(k *keyChain) {
		k.argonTime = time
		k.argonMemory = memoryKiB
		k.argonThreads = threads
	}
}

// NewKeyChain derives accounts key pairs from passphrase and salt with the
// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//
// The same inputs always yield the same accounts.
func NewKeyChain(passphrase, salt string, accounts int, opts ...Option) (KeyChain, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	if accounts < 0 {
		return nil, ErrNegativeAccounts
	}

	k := &keyChain{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		index:        make(map[string]int, accounts),
	}
	for _, opt := range opts {
		opt(k)
	}

	master := argon2.IDKey([]byte(passphrase), []byte(salt), k.argonTime, k.argonMemory, k.argonThreads, 32)

	for i := 0; i < accounts; i++ {
		acc := deriveAccount(master, uint32(i))
		if _, dup := k.index[acc.address]; dup {
			return nil, fmt.Errorf("address collision at account %d", i)
		}
		k.index[acc.address] = i
		k.accounts = append(k.accounts, acc)
	}

	return k, nil
}

func deriveAccount(master []byte, i uint32) account {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], i)

	h := sha512.New()
	h.Write(master)
	h.Write(idx[:])
	seed := h.Sum(nil)[:ed25519.SeedSize]

	private := ed25519.NewKeyFromSeed(seed)
	public := private.Public().(ed25519.PublicKey)

	return account{address: Address(public), private: private, public: public}
}

// Address derives the DAG-style address of a public key: the prefix, a
// parity digit and the last 36 characters of base58(SHA-256(pub)).
func Address(pub ed25519.PublicKey) string {
	sum := sha256.Sum256(pub)
	encoded := base58.Encode(sum[:])
	if len(encoded) > addressTailLen {
		encoded = encoded[len(encoded)-addressTailLen:]
	}

	digits := 0
	for _, c := range encoded {
		if c >= '0' && c <= '9' {
			digits += int(c - '0')
		}
	}

	return addressPrefix + strconv.Itoa(digits%9) + encoded
}

// SignedDataDigest is the message actually signed for an encoded payload.
func SignedDataDigest(encodedPayload string) []byte {
	h := sha512.New()
	h.Write([]byte(signedDataPrefix))
	h.Write([]byte(strconv.Itoa(len(encodedPayload))))
	h.Write([]byte("\n"))
	h.Write([]byte(encodedPayload))
	return h.Sum(nil)
}

// Addresses implements [KeyChain].
func (k *keyChain) Addresses() []string {
	out := make([]string, len(k.accounts))
	for i, acc := range k.accounts {
		out[i] = acc.address
	}
	return out
}

// Owns implements [KeyChain].
func (k *keyChain) Owns(address string) bool {
	_, ok := k.index[address]
	return ok
}

// SignData implements [KeyChain].
func (k *keyChain) SignData(address, encodedPayload string) (string, error) {
	i, ok := k.index[address]
	if !ok {
		return "", ErrUnknownAddress
	}

	sig := ed25519.Sign(k.accounts[i].private, SignedDataDigest(encodedPayload))
	return hex.EncodeToString(sig), nil
}

// VerifyData implements [KeyChain].
func (k *keyChain) VerifyData(address, encodedPayload, signature string) bool {
	i, ok := k.index[address]
	if !ok {
		return false
	}

	sig, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	return ed25519.Verify(k.accounts[i].public, SignedDataDigest(encodedPayload), sig)
}
