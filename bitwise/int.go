//
// int.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package bitwise

import (
	"fmt"
	"math/bits"
)

// UInt constrains the native word types the Int operation set
// supports.
type UInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Int implements the Ops operation set over native unsigned
// integers. It is stateless; the zero value is ready for use.
//
// By contract this is the only code that applies native operators to
// algorithm-visible words.
type Int[T UInt] struct{}

// Width implements Ops.Width.
func (Int[T]) Width() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// And implements Ops.And.
func (Int[T]) And(x, y T) T {
	return x & y
}

// Or implements Ops.Or.
func (Int[T]) Or(x, y T) T {
	return x | y
}

// Xor implements Ops.Xor.
func (Int[T]) Xor(x, y T) T {
	return x ^ y
}

// Cmplmnt implements Ops.Cmplmnt.
func (Int[T]) Cmplmnt(x T) T {
	return ^x
}

// AddMod implements Ops.AddMod.
func (Int[T]) AddMod(x, y T) T {
	return x + y
}

// MulMod implements Ops.MulMod.
func (Int[T]) MulMod(x, y T) T {
	return x * y
}

// Shl implements Ops.Shl. A shift by the full word width yields
// zero.
func (Int[T]) Shl(x T, n uint) T {
	return x << n
}

// Shr implements Ops.Shr.
func (Int[T]) Shr(x T, n uint) T {
	return x >> n
}

// Rotl implements Ops.Rotl.
func (ops Int[T]) Rotl(x T, n uint) T {
	width := ops.Width()
	if n > width {
		panic(fmt.Sprintf("bitwise: rotate amount %d > width %d",
			n, width))
	}
	return ops.Or(ops.Shl(x, n), ops.Shr(x, width-n))
}

// Rotr implements Ops.Rotr.
func (ops Int[T]) Rotr(x T, n uint) T {
	width := ops.Width()
	if n > width {
		panic(fmt.Sprintf("bitwise: rotate amount %d > width %d",
			n, width))
	}
	return ops.Or(ops.Shr(x, n), ops.Shl(x, width-n))
}

// Constant implements Ops.Constant.
func (Int[T]) Constant(v uint64) T {
	return T(v)
}

// TestBit implements Ops.TestBit.
func (ops Int[T]) TestBit(x T, n uint) bool {
	if n >= ops.Width() {
		panic(fmt.Sprintf("bitwise: bit index %d >= width %d",
			n, ops.Width()))
	}
	return x&(T(1)<<n) != 0
}

// Ternary implements Ops.Ternary.
func (Int[T]) Ternary(b bool, x, y T) T {
	if b {
		return x
	}
	return y
}

// Bitmask implements Ops.Bitmask.
func (Int[T]) Bitmask(b bool) T {
	if b {
		return ^T(0)
	}
	return T(0)
}

// Lookup implements Ops.Lookup. An out-of-range index panics.
func (Int[T]) Lookup(table []T, idx int) T {
	return table[idx]
}
