// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionStatus is the lifecycle stage of the wallet session.
type ConnectionStatus int

const (
	// StatusDisconnected means no account is active.
	StatusDisconnected ConnectionStatus = iota

	// StatusConnecting means an account request is awaiting the provider.
	StatusConnecting

	// StatusConnected means an account address is active.
	StatusConnected
)

func (s ConnectionStatus) String() string {
	switch s {
	case StatusDisconnected:
		return "disconnected"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// WalletAccountState is the observable state of the wallet session.
// Address is only meaningful when Status is [StatusConnected]; it is an
// opaque identifier supplied by the provider and never validated.
type WalletAccountState struct {
	Status  ConnectionStatus
	Address string
}

// IsConnected reports whether an address is active.
func (s WalletAccountState) IsConnected() bool {
	return s.Status == StatusConnected
}

// ShortAddress abbreviates an address as its first six and last four
// characters joined by "...". Short addresses overlap rather than pad.
func ShortAddress(address string) string {
	r := []rune(address)
	head := r
	if len(head) > 6 {
		head = head[:6]
	}
	tail := r
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	return string(head) + "..." + string(tail)
}
