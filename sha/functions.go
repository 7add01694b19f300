//
// functions.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"github.com/markkurossi/cryptl/bitwise"
)

// Func provides the round functions shared by the SHA family (FIPS
// 180-4 section 4.1), expressed over the bitwise operation set. All
// functions are stateless and produce identical results for any
// operation set that honors the bitwise.Ops contract.
type Func[T any] struct {
	Ops bitwise.Ops[T]
}

// Ch is the choose function: bits of x select between y and z.
func (f Func[T]) Ch(x, y, z T) T {
	return f.Ops.Xor(
		f.Ops.And(x, y),
		f.Ops.And(f.Ops.Cmplmnt(x), z))
}

// Parity is the three-way XOR function.
func (f Func[T]) Parity(x, y, z T) T {
	return f.Ops.Xor(f.Ops.Xor(x, y), z)
}

// Maj is the majority function.
func (f Func[T]) Maj(x, y, z T) T {
	return f.Ops.Xor(
		f.Ops.Xor(
			f.Ops.And(x, y),
			f.Ops.And(x, z)),
		f.Ops.And(y, z))
}

// F selects the SHA-1 round function for the round: Ch for rounds
// [0,20), Parity for [20,40) and [60,80), and Maj for [40,60).
func (f Func[T]) F(x, y, z T, round int) T {
	if round < 20 {
		return f.Ch(x, y, z)
	} else if round < 40 {
		return f.Parity(x, y, z)
	} else if round < 60 {
		return f.Maj(x, y, z)
	} else {
		return f.Parity(x, y, z)
	}
}

// BigSigma returns the XOR of three right-rotations of x. The
// compression functions of the SHA-2 family use it with the rotate
// amounts of FIPS 180-4 section 4.1.
func (f Func[T]) BigSigma(x T, a, b, c uint) T {
	return f.Ops.Xor(
		f.Ops.Xor(
			f.Ops.Rotr(x, a),
			f.Ops.Rotr(x, b)),
		f.Ops.Rotr(x, c))
}

// SmallSigma returns ROTR(x,a) XOR ROTR(x,b) XOR SHR(x,c); the third
// term is a plain shift, not a rotate. The SHA-2 message schedules
// use it.
func (f Func[T]) SmallSigma(x T, a, b, c uint) T {
	return f.Ops.Xor(
		f.Ops.Xor(
			f.Ops.Rotr(x, a),
			f.Ops.Rotr(x, b)),
		f.Ops.Shr(x, c))
}
