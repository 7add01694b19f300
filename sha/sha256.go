//
// sha256.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"github.com/markkurossi/cryptl/bitwise"
)

// SHA256 implements the SHA-256 algorithm over the word type T.
type SHA256[T any] struct {
	Base[T]
	fn Func[T]

	h [8]T
	w [64]T
	v [8]T
	k [64]T
}

// NewSHA256 creates a SHA-256 instance computing over the operation
// set ops.
func NewSHA256[T any](ops bitwise.Ops[T]) *SHA256[T] {
	s := &SHA256[T]{
		fn: Func[T]{
			Ops: ops,
		},
	}
	s.alg = s
	s.wordBits = ops.Width()

	// Round constants (FIPS 180-4 section 4.2.2).
	k := [64]uint64{
		0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
		0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
		0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
		0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
		0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
		0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
		0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
		0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
		0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
		0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
		0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
		0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
		0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
		0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
		0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
		0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
	}
	for i, v := range k {
		s.k[i] = ops.Constant(v)
	}

	return s
}

// New256 creates a SHA-256 instance over native 32-bit words.
func New256() *SHA256[uint32] {
	return NewSHA256[uint32](bitwise.Int[uint32]{})
}

// Digest returns the 256-bit digest as eight hash words.
func (s *SHA256[T]) Digest() [8]T {
	return s.h
}

func (s *SHA256[T]) initHashValue() {
	// Initial hash value (FIPS 180-4 section 5.3.3).
	iv := [8]uint64{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	}
	for i, v := range iv {
		s.h[i] = s.fn.Ops.Constant(v)
	}
}

func (s *SHA256[T]) prepMsgSchedule(msgIndex *int) {
	ops := s.fn.Ops

	for t := 0; t < 16; t++ {
		s.w[t] = s.msgWord(msgIndex)
	}
	for t := 16; t < 64; t++ {
		s.w[t] = ops.AddMod(
			s.fn.SmallSigma(s.w[t-2], 17, 19, 10),
			ops.AddMod(
				s.w[t-7],
				ops.AddMod(
					s.fn.SmallSigma(s.w[t-15], 7, 18, 3),
					s.w[t-16])))
	}
}

func (s *SHA256[T]) initWorkingVars() {
	copy(s.v[:], s.h[:])
}

func (s *SHA256[T]) workingLoop() {
	ops := s.fn.Ops

	for t := 0; t < 64; t++ {
		t1 := ops.AddMod(
			s.v[7],
			ops.AddMod(
				s.fn.BigSigma(s.v[4], 6, 11, 25),
				ops.AddMod(
					s.fn.Ch(s.v[4], s.v[5], s.v[6]),
					ops.AddMod(
						ops.Lookup(s.k[:], t),
						s.w[t]))))
		t2 := ops.AddMod(
			s.fn.BigSigma(s.v[0], 2, 13, 22),
			s.fn.Maj(s.v[0], s.v[1], s.v[2]))

		s.v[7] = s.v[6]
		s.v[6] = s.v[5]
		s.v[5] = s.v[4]
		s.v[4] = ops.AddMod(s.v[3], t1)
		s.v[3] = s.v[2]
		s.v[2] = s.v[1]
		s.v[1] = s.v[0]
		s.v[0] = ops.AddMod(t1, t2)
	}
}

func (s *SHA256[T]) updateHash() {
	ops := s.fn.Ops

	for i := range s.h {
		s.h[i] = ops.AddMod(s.v[i], s.h[i])
	}
}

func (s *SHA256[T]) afterHash() {
}
