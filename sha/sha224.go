//
// sha224.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"github.com/markkurossi/cryptl/bitwise"
)

// SHA224 implements the SHA-224 algorithm over the word type T.
// SHA-224 is SHA-256 with distinct initial constants and the digest
// truncated to the first seven hash words; the schedule and
// compression logic are those of the owned SHA-256 engine,
// unchanged.
type SHA224[T any] struct {
	*SHA256[T]

	digest    [7]T
	setDigest bool
}

// NewSHA224 creates a SHA-224 instance computing over the operation
// set ops.
func NewSHA224[T any](ops bitwise.Ops[T]) *SHA224[T] {
	s := &SHA224[T]{
		SHA256: NewSHA256[T](ops),
	}

	// Route the engine hooks through this instance so the overridden
	// initHashValue and afterHash take effect.
	s.alg = s

	return s
}

// New224 creates a SHA-224 instance over native 32-bit words.
func New224() *SHA224[uint32] {
	return NewSHA224[uint32](bitwise.Int[uint32]{})
}

// Digest returns the 224-bit digest as seven hash words. The
// truncated copy is materialized lazily: it is recomputed on the
// first read after a ComputeHash run and reused by subsequent reads.
func (s *SHA224[T]) Digest() [7]T {
	if s.setDigest {
		copy(s.digest[:], s.h[:7])
		s.setDigest = false
	}
	return s.digest
}

// initHashValue overrides the SHA-256 initial hash value.
func (s *SHA224[T]) initHashValue() {
	// Initial hash value (FIPS 180-4 section 5.3.2).
	iv := [8]uint64{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	}
	for i, v := range iv {
		s.h[i] = s.fn.Ops.Constant(v)
	}
}

// afterHash marks the truncated digest stale.
func (s *SHA224[T]) afterHash() {
	s.setDigest = true
}
