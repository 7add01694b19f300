//
// sha1.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"github.com/markkurossi/cryptl/bitwise"
)

// SHA1 implements the SHA-1 algorithm over the word type T. SHA-1 is
// cryptographically broken; it is provided for protocol
// compatibility and as the 160-bit member of the family.
type SHA1[T any] struct {
	Base[T]
	fn Func[T]

	h [5]T
	w [80]T
	v [5]T
	k [4]T
}

// NewSHA1 creates a SHA-1 instance computing over the operation set
// ops.
func NewSHA1[T any](ops bitwise.Ops[T]) *SHA1[T] {
	s := &SHA1[T]{
		fn: Func[T]{
			Ops: ops,
		},
	}
	s.alg = s
	s.wordBits = ops.Width()

	// Round constants (FIPS 180-4 section 4.2.1), one per 20-round
	// span.
	k := [4]uint64{
		0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xca62c1d6,
	}
	for i, v := range k {
		s.k[i] = ops.Constant(v)
	}

	return s
}

// New1 creates a SHA-1 instance over native 32-bit words.
func New1() *SHA1[uint32] {
	return NewSHA1[uint32](bitwise.Int[uint32]{})
}

// Digest returns the 160-bit digest as five hash words.
func (s *SHA1[T]) Digest() [5]T {
	return s.h
}

func (s *SHA1[T]) initHashValue() {
	// Initial hash value (FIPS 180-4 section 5.3.1).
	iv := [5]uint64{
		0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0,
	}
	for i, v := range iv {
		s.h[i] = s.fn.Ops.Constant(v)
	}
}

func (s *SHA1[T]) prepMsgSchedule(msgIndex *int) {
	ops := s.fn.Ops

	for t := 0; t < 16; t++ {
		s.w[t] = s.msgWord(msgIndex)
	}
	for t := 16; t < 80; t++ {
		s.w[t] = ops.Rotl(
			ops.Xor(
				ops.Xor(s.w[t-3], s.w[t-8]),
				ops.Xor(s.w[t-14], s.w[t-16])),
			1)
	}
}

func (s *SHA1[T]) initWorkingVars() {
	copy(s.v[:], s.h[:])
}

func (s *SHA1[T]) workingLoop() {
	ops := s.fn.Ops

	for t := 0; t < 80; t++ {
		tmp := ops.AddMod(
			ops.Rotl(s.v[0], 5),
			ops.AddMod(
				s.fn.F(s.v[1], s.v[2], s.v[3], t),
				ops.AddMod(
					s.v[4],
					ops.AddMod(
						ops.Lookup(s.k[:], t/20),
						s.w[t]))))

		s.v[4] = s.v[3]
		s.v[3] = s.v[2]
		s.v[2] = ops.Rotl(s.v[1], 30)
		s.v[1] = s.v[0]
		s.v[0] = tmp
	}
}

func (s *SHA1[T]) updateHash() {
	ops := s.fn.Ops

	for i := range s.h {
		s.h[i] = ops.AddMod(s.v[i], s.h[i])
	}
}

func (s *SHA1[T]) afterHash() {
}
