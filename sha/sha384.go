//
// sha384.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"github.com/markkurossi/cryptl/bitwise"
)

// SHA384 implements the SHA-384 algorithm over the word type T.
// SHA-384 is SHA-512 with distinct initial constants and the digest
// truncated to the first six hash words.
type SHA384[T any] struct {
	*SHA512[T]

	digest    [6]T
	setDigest bool
}

// NewSHA384 creates a SHA-384 instance computing over the operation
// set ops.
func NewSHA384[T any](ops bitwise.Ops[T]) *SHA384[T] {
	s := &SHA384[T]{
		SHA512: NewSHA512[T](ops),
	}
	s.alg = s

	return s
}

// New384 creates a SHA-384 instance over native 64-bit words.
func New384() *SHA384[uint64] {
	return NewSHA384[uint64](bitwise.Int[uint64]{})
}

// Digest returns the 384-bit digest as six hash words, materialized
// lazily on the first read after a ComputeHash run.
func (s *SHA384[T]) Digest() [6]T {
	if s.setDigest {
		copy(s.digest[:], s.h[:6])
		s.setDigest = false
	}
	return s.digest
}

// initHashValue overrides the SHA-512 initial hash value.
func (s *SHA384[T]) initHashValue() {
	// Initial hash value (FIPS 180-4 section 5.3.4).
	iv := [8]uint64{
		0xcbbb9d5dc1059ed8, 0x629a292a367cd507,
		0x9159015a3070dd17, 0x152fecd8f70e5939,
		0x67332667ffc00b31, 0x8eb44a8768581511,
		0xdb0c2e0d64f98fa7, 0x47b5481dbefa4fa4,
	}
	for i, v := range iv {
		s.h[i] = s.fn.Ops.Constant(v)
	}
}

// afterHash marks the truncated digest stale.
func (s *SHA384[T]) afterHash() {
	s.setDigest = true
}
