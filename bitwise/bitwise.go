//
// bitwise.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package bitwise defines the primitive word operations the hash
// algorithms are written against. The algorithms never apply native
// operators to their words; every AND, rotate, addition, or table
// lookup goes through an Ops implementation. This keeps the
// algorithm structure independent of the word representation so the
// same code can run over native unsigned integers or over symbolic
// nodes that record the computation instead of performing it.
package bitwise

// Ops defines the operation set over the word type T. All operations
// are pure: they compute a result from their arguments and have no
// other effects. Implementations for word widths of 8, 32, and 64
// bits are required by the hash algorithms.
//
// Shift and rotate amounts must be in the range [0, Width()]; a
// shift by Width() yields the all-zero word. TestBit indexes must be
// below Width(). Lookup indexes must be within the table. Violating
// these preconditions is a programming error, not a runtime
// condition: implementations may panic or produce undefined results.
type Ops[T any] interface {
	// Width returns the word size in bits.
	Width() uint

	// And returns the bitwise conjunction of x and y.
	And(x, y T) T

	// Or returns the bitwise disjunction of x and y.
	Or(x, y T) T

	// Xor returns the bitwise exclusive-or of x and y.
	Xor(x, y T) T

	// Cmplmnt returns the bitwise complement of x.
	Cmplmnt(x T) T

	// AddMod returns x+y modulo 2^Width(). Overflow wraps silently;
	// the hash constants rely on wraparound arithmetic.
	AddMod(x, y T) T

	// MulMod returns x*y modulo 2^Width().
	MulMod(x, y T) T

	// Shl returns x shifted left by n bits, filling with zeros.
	Shl(x T, n uint) T

	// Shr returns x shifted right by n bits, filling with zeros.
	Shr(x T, n uint) T

	// Rotl rotates x left by n bits.
	Rotl(x T, n uint) T

	// Rotr rotates x right by n bits.
	Rotr(x T, n uint) T

	// Constant lifts the literal v into the word type, truncating to
	// Width() bits. It is the only place literals enter algorithm
	// code and must be usable at initialization time.
	Constant(v uint64) T

	// TestBit reports whether bit n of x is set, bit 0 being the
	// least significant.
	TestBit(x T, n uint) bool

	// Ternary returns x if b, y otherwise. Both x and y are plain
	// values; selecting one has no further effects.
	Ternary(b bool, x, y T) T

	// Bitmask returns the all-ones word if b, the all-zero word
	// otherwise. Algorithms use it to build conditional masks where
	// control flow must stay branch-free.
	Bitmask(b bool) T

	// Lookup returns table[idx].
	Lookup(table []T, idx int) T
}
