// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zkcg

import (
	"math/big"

	"github.com/luxfi/crypto/bn256"
)

// bn254Order is the BN254 scalar field modulus (the order of G1/G2), a
// public constant of the curve (see EIP-196/197).
var bn254Order, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// snarkFixture builds a self-consistent Groth16-style verifying key and
// a proof that satisfies its pairing equation for the given threshold,
// by picking the witness scalars directly in the exponent rather than
// running an actual prover (which is out of scope for this package).
// It exists only to exercise SNARKBackend's pairing arithmetic; it
// makes no soundness claim about the resulting "proof".
func snarkFixture(threshold uint64) (*SNARKVerifyingKey, []byte) {
	mod := func(v int64) *big.Int {
		return new(big.Int).Mod(big.NewInt(v), bn254Order)
	}

	alpha := mod(7)
	beta := mod(11)
	gamma := mod(13)
	ic0 := mod(5)
	ic1 := mod(3)
	a := mod(17)
	b := mod(19)

	th := new(big.Int).Mod(new(big.Int).SetUint64(threshold), bn254Order)

	// x = ic0 + threshold*ic1 (mod r), the scalar vkX reduces to since
	// IC[0] and IC[1] are themselves scalar multiples of G1.
	x := new(big.Int).Mod(new(big.Int).Add(ic0, new(big.Int).Mul(th, ic1)), bn254Order)

	// Delta is fixed to the G2 generator (delta=1) so c can be solved
	// for directly: a*b = alpha*beta + x*gamma + c*delta (mod r).
	rhs := new(big.Int).Add(new(big.Int).Mul(alpha, beta), new(big.Int).Mul(x, gamma))
	ab := new(big.Int).Mul(a, b)
	c := new(big.Int).Mod(new(big.Int).Sub(ab, rhs), bn254Order)

	vk := &SNARKVerifyingKey{
		Alpha: new(bn256.G1).ScalarBaseMult(alpha),
		Beta:  new(bn256.G2).ScalarBaseMult(beta),
		Gamma: new(bn256.G2).ScalarBaseMult(gamma),
		Delta: new(bn256.G2).ScalarBaseMult(big.NewInt(1)),
		IC: []*bn256.G1{
			new(bn256.G1).ScalarBaseMult(ic0),
			new(bn256.G1).ScalarBaseMult(ic1),
		},
	}

	proofA := new(bn256.G1).ScalarBaseMult(a)
	proofB := new(bn256.G2).ScalarBaseMult(b)
	proofC := new(bn256.G1).ScalarBaseMult(c)

	proof := make([]byte, 0, proofEncodedLen)
	proof = append(proof, proofA.Marshal()...)
	proof = append(proof, proofB.Marshal()...)
	proof = append(proof, proofC.Marshal()...)
	return vk, proof
}
