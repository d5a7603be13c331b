// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

// Hash is a 32-byte digest, used for state roots and commitments.
type Hash [32]byte

// Commitment is the successor state root a proof attests to.
type Commitment struct {
	Root Hash
}

// PublicInputs are the values a proof is checked against. Threshold is
// the only value cryptographically bound by the SNARK backend; OldRoot
// and Nonce are checked by the engine against its current state before
// the proof is ever handed to a backend.
type PublicInputs struct {
	Threshold uint64
	OldRoot   Hash
	Nonce     uint64
}
