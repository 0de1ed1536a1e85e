// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain holds the development wallet's accounts. It knows nothing about
// the network; its only job is to derive keys and sign with them.
//
// Derivation:
//
//	master   = Argon2id(passphrase, salt)
//	seed[i]  = SHA-512(master ‖ uint32be(i))[:32]
//	key[i]   = Ed25519(seed[i])
//	addr[i]  = "DAG" ‖ parity ‖ last36(base58(SHA-256(pub[i])))
type KeyChain interface {
	// Addresses returns the account addresses in derivation order.
	Addresses() []string

	// Owns reports whether address belongs to the key chain.
	Owns(address string) bool

	// SignData signs an encoded payload with the key of address and returns
	// the hex signature. Returns [ErrUnknownAddress] for a foreign address.
	SignData(address, encodedPayload string) (string, error)

	// VerifyData checks a signature produced by SignData.
	VerifyData(address, encodedPayload, signature string) bool
}
