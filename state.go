// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

// ProtocolState is the replicated state a VerifierEngine advances one
// accepted proof at a time.
type ProtocolState struct {
	StateRoot Hash
	Nonce     uint64
	Epoch     uint64
}

// Genesis returns the all-zero starting state: zero root, nonce 0,
// epoch 0. Epoch is carried verbatim by every transition in this
// package; nothing here checks or advances it.
func Genesis() ProtocolState {
	return ProtocolState{}
}
