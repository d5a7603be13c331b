// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

// ProofBackend verifies a proof against public inputs. Implementations
// must be pure, side-effect-free, safe for concurrent use, and total:
// malformed or empty proof bytes must return an error, never panic.
type ProofBackend interface {
	Verify(proofBytes []byte, inputs *PublicInputs) error
}

// StubBackend accepts every proof unconditionally. It exists for tests
// and for the demonstration CLI's default configuration, mirroring the
// always-accept backend the original implementation wires in by
// default before a real proof system is configured.
type StubBackend struct{}

func (StubBackend) Verify([]byte, *PublicInputs) error {
	return nil
}
