// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

import (
	"bytes"

	"github.com/fxamacker/cbor/v2"
)

// zkVMEnvelope is the canonical binary proof a zkVM-style backend
// consumes: a method identifier (which guest program ran) and a
// journal digest produced by the zkVM runtime. The journal digest is
// never recomputed here — this backend has no independent way to
// derive it from raw public values, and doing so would give a false
// sense of verification. State binding for zkVM proofs is enforced by
// the engine's own precondition checks, not by this backend.
type zkVMEnvelope struct {
	MethodID      [32]byte `cbor:"1,keyasint"`
	JournalDigest [32]byte `cbor:"2,keyasint"`
}

// ZkVMBackend verifies the canonical envelope against a fixed, expected
// method id.
type ZkVMBackend struct {
	methodID [32]byte
	logger   Logger
}

// NewZkVMBackend builds a backend that only accepts proofs produced by
// the guest program identified by methodID. logger may be nil.
func NewZkVMBackend(methodID [32]byte, logger Logger) *ZkVMBackend {
	return &ZkVMBackend{methodID: methodID, logger: logger}
}

var cborDecMode = func() cbor.DecMode {
	mode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

var cborEncMode = func() cbor.EncMode {
	mode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return mode
}()

func (b *ZkVMBackend) Verify(proofBytes []byte, _ *PublicInputs) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newErr(InvalidProof, nil)
		}
	}()

	if len(proofBytes) == 0 {
		return newErr(InvalidProof, nil)
	}

	var envelope zkVMEnvelope
	dec := cborDecMode.NewDecoder(bytes.NewReader(proofBytes))
	if err := dec.Decode(&envelope); err != nil {
		return newErr(InvalidProof, err)
	}
	if dec.NumBytesRead() != len(proofBytes) {
		return newErr(InvalidProof, nil)
	}

	if envelope.MethodID != b.methodID {
		if b.logger != nil {
			b.logger.Info("zkvm backend: method id mismatch")
		}
		return newErr(InvalidProof, nil)
	}
	return nil
}

// EncodeZkVMProof is the reference encoder used by tests to build a
// canonical proof envelope: equal records always produce equal bytes.
func EncodeZkVMProof(methodID, journalDigest [32]byte) ([]byte, error) {
	return cborEncMode.Marshal(zkVMEnvelope{MethodID: methodID, JournalDigest: journalDigest})
}
