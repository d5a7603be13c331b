// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

import (
	"math/big"

	"github.com/luxfi/crypto/bn256"
	"github.com/zeebo/blake3"
)

const (
	g1EncodedLen = 64
	g2EncodedLen = 128
	// proofEncodedLen is the fixed wire size of a Groth16-style proof:
	// A (G1) || B (G2) || C (G1).
	proofEncodedLen = g1EncodedLen + g2EncodedLen + g1EncodedLen
)

// SNARKVerifyingKey is the immutable material a SNARKBackend checks
// proofs against. IC must have exactly two elements: the constant term
// at index 0 and the threshold coefficient at index 1, since threshold
// is this backend's sole public instance column.
type SNARKVerifyingKey struct {
	Alpha *bn256.G1
	Beta  *bn256.G2
	Gamma *bn256.G2
	Delta *bn256.G2
	IC    []*bn256.G1
}

// SNARKBackend verifies Groth16-style BN254 proofs whose only bound
// public input is the credit-gating threshold.
type SNARKBackend struct {
	vk     *SNARKVerifyingKey
	logger Logger
}

// NewSNARKBackend builds a backend around an already-assembled
// verifying key. vk is held immutably; logger may be nil.
func NewSNARKBackend(vk *SNARKVerifyingKey, logger Logger) *SNARKBackend {
	return &SNARKBackend{vk: vk, logger: logger}
}

func (b *SNARKBackend) Verify(proofBytes []byte, inputs *PublicInputs) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newErr(InvalidProof, nil)
		}
	}()

	if len(proofBytes) != proofEncodedLen {
		return newErr(InvalidProof, nil)
	}

	var a, c bn256.G1
	var bPoint bn256.G2
	if _, err := a.Unmarshal(proofBytes[0:g1EncodedLen]); err != nil {
		return newErr(InvalidProof, err)
	}
	if _, err := bPoint.Unmarshal(proofBytes[g1EncodedLen : g1EncodedLen+g2EncodedLen]); err != nil {
		return newErr(InvalidProof, err)
	}
	if _, err := c.Unmarshal(proofBytes[g1EncodedLen+g2EncodedLen:]); err != nil {
		return newErr(InvalidProof, err)
	}

	if b.vk == nil || len(b.vk.IC) != 2 {
		return newErr(InvalidProof, nil)
	}

	if b.logger != nil {
		b.logger.Debug("snark backend: verifying proof", "transcript", transcriptDigest(proofBytes, inputs.Threshold))
	}

	// vkX = IC[0] + threshold * IC[1]
	vkX := new(bn256.G1)
	vkX.ScalarMult(b.vk.IC[0], big.NewInt(1))
	term := new(bn256.G1)
	term.ScalarMult(b.vk.IC[1], new(big.Int).SetUint64(inputs.Threshold))
	vkX.Add(vkX, term)

	negAlpha := new(bn256.G1)
	negAlpha.ScalarMult(b.vk.Alpha, big.NewInt(-1))
	negVkX := new(bn256.G1)
	negVkX.ScalarMult(vkX, big.NewInt(-1))
	negC := new(bn256.G1)
	negC.ScalarMult(&c, big.NewInt(-1))

	g1Points := []*bn256.G1{&a, negAlpha, negVkX, negC}
	g2Points := []*bn256.G2{&bPoint, b.vk.Beta, b.vk.Gamma, b.vk.Delta}

	if !bn256.PairingCheck(g1Points, g2Points) {
		if b.logger != nil {
			b.logger.Info("snark backend: pairing check failed")
		}
		return newErr(InvalidProof, nil)
	}
	return nil
}

// transcriptDigest produces a diagnostic Fiat-Shamir-style digest of the
// proof bytes and bound threshold, for logging only. It never gates
// acceptance: the pairing equation is the sole soundness check.
func transcriptDigest(proofBytes []byte, threshold uint64) Hash {
	h := blake3.New()
	h.Write(proofBytes)
	var tb [8]byte
	for i := 0; i < 8; i++ {
		tb[i] = byte(threshold >> (8 * i))
	}
	h.Write(tb[:])
	var out Hash
	h.Digest().Read(out[:])
	return out
}
