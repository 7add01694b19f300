//
// trace.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package trace implements a symbolic word representation for the
// bitwise operation set. A Builder hands out Node words and records
// every primitive operation applied to them as a Step, building a
// linear trace of the computation instead of just its result. The
// hash algorithms in the sha package run over Node words unchanged;
// the recorded trace is what a verifiable-computation or
// circuit-witness consumer walks.
//
// Nodes still carry the concrete value of their subcomputation so a
// trace stays checkable against the native result. Rotations are
// recorded as their shift-and-or decomposition; the trace contains
// primitive steps only.
package trace

import (
	"fmt"

	"github.com/markkurossi/text/superscript"
)

// Op specifies a primitive trace operation.
type Op byte

// Trace operations.
const (
	OpInput Op = iota
	OpConstant
	OpAnd
	OpOr
	OpXor
	OpCmplmnt
	OpAddMod
	OpMulMod
	OpShl
	OpShr
	OpTestBit
	OpTernary
	OpBitmask
	OpLookup
	numOps
)

func (op Op) String() string {
	switch op {
	case OpInput:
		return "INPUT"
	case OpConstant:
		return "CONST"
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpXor:
		return "XOR"
	case OpCmplmnt:
		return "INV"
	case OpAddMod:
		return "ADD"
	case OpMulMod:
		return "MUL"
	case OpShl:
		return "SHL"
	case OpShr:
		return "SHR"
	case OpTestBit:
		return "TESTBIT"
	case OpTernary:
		return "TERNARY"
	case OpBitmask:
		return "BITMASK"
	case OpLookup:
		return "LOOKUP"
	default:
		return fmt.Sprintf("{Op %d}", op)
	}
}

// noOperand marks an unused operand slot of a step.
const noOperand = -1

// Step is one recorded operation. X and Y are the indices of the
// operand steps, or noOperand for operations with fewer than two
// word operands. N carries the shift amount, bit index, or lookup
// index of the operations that take one. Val is the concrete value
// of the result, truncated to the builder width.
type Step struct {
	Op  Op
	X   int
	Y   int
	N   uint
	Val uint64
}

// Node is a symbolic word: a reference to the step that produced it.
// Nodes are created by a single Builder and must not be mixed
// between builders.
type Node struct {
	id int
}

func (n Node) String() string {
	return "w" + superscript.Itoa(n.id)
}

// Builder implements bitwise.Ops over symbolic Node words, recording
// every operation into a trace. A Builder is not safe for concurrent
// use.
type Builder struct {
	width uint
	mask  uint64
	steps []Step
	stats Stats
}

// NewBuilder creates a trace builder for words of the given bit
// width (8, 32, or 64).
func NewBuilder(width uint) *Builder {
	var mask uint64
	if width >= 64 {
		mask = ^uint64(0)
	} else {
		mask = 1<<width - 1
	}
	return &Builder{
		width: width,
		mask:  mask,
	}
}

// Input introduces a message word with the concrete value v. Inputs
// are recorded distinct from constants: a consumer binds them to
// witness values while constants are part of the computation
// structure.
func (b *Builder) Input(v uint64) Node {
	return b.record(OpInput, noOperand, noOperand, 0, v)
}

// Value returns the concrete value of the node's subcomputation.
func (b *Builder) Value(n Node) uint64 {
	return b.steps[n.id].Val
}

// Steps returns the recorded trace.
func (b *Builder) Steps() []Step {
	return b.steps
}

// Stats returns the per-operation step counts of the trace.
func (b *Builder) Stats() Stats {
	return b.stats
}

// Width implements bitwise.Ops.Width.
func (b *Builder) Width() uint {
	return b.width
}

// And implements bitwise.Ops.And.
func (b *Builder) And(x, y Node) Node {
	return b.record(OpAnd, x.id, y.id, 0, b.val(x)&b.val(y))
}

// Or implements bitwise.Ops.Or.
func (b *Builder) Or(x, y Node) Node {
	return b.record(OpOr, x.id, y.id, 0, b.val(x)|b.val(y))
}

// Xor implements bitwise.Ops.Xor.
func (b *Builder) Xor(x, y Node) Node {
	return b.record(OpXor, x.id, y.id, 0, b.val(x)^b.val(y))
}

// Cmplmnt implements bitwise.Ops.Cmplmnt.
func (b *Builder) Cmplmnt(x Node) Node {
	return b.record(OpCmplmnt, x.id, noOperand, 0, ^b.val(x))
}

// AddMod implements bitwise.Ops.AddMod.
func (b *Builder) AddMod(x, y Node) Node {
	return b.record(OpAddMod, x.id, y.id, 0, b.val(x)+b.val(y))
}

// MulMod implements bitwise.Ops.MulMod.
func (b *Builder) MulMod(x, y Node) Node {
	return b.record(OpMulMod, x.id, y.id, 0, b.val(x)*b.val(y))
}

// Shl implements bitwise.Ops.Shl.
func (b *Builder) Shl(x Node, n uint) Node {
	b.assertShift(n)
	return b.record(OpShl, x.id, noOperand, n, b.val(x)<<n)
}

// Shr implements bitwise.Ops.Shr.
func (b *Builder) Shr(x Node, n uint) Node {
	b.assertShift(n)
	return b.record(OpShr, x.id, noOperand, n, b.val(x)>>n)
}

// Rotl implements bitwise.Ops.Rotl as the shift-and-or
// decomposition, so the trace contains primitive steps only.
func (b *Builder) Rotl(x Node, n uint) Node {
	return b.Or(b.Shl(x, n), b.Shr(x, b.width-n))
}

// Rotr implements bitwise.Ops.Rotr.
func (b *Builder) Rotr(x Node, n uint) Node {
	return b.Or(b.Shr(x, n), b.Shl(x, b.width-n))
}

// Constant implements bitwise.Ops.Constant.
func (b *Builder) Constant(v uint64) Node {
	return b.record(OpConstant, noOperand, noOperand, 0, v)
}

// TestBit implements bitwise.Ops.TestBit.
func (b *Builder) TestBit(x Node, n uint) bool {
	if n >= b.width {
		panic("trace: bit index out of range")
	}
	set := b.val(x)&(1<<n) != 0
	var v uint64
	if set {
		v = 1
	}
	b.record(OpTestBit, x.id, noOperand, n, v)
	return set
}

// Ternary implements bitwise.Ops.Ternary.
func (b *Builder) Ternary(cond bool, x, y Node) Node {
	sel := y
	if cond {
		sel = x
	}
	return b.record(OpTernary, x.id, y.id, 0, b.val(sel))
}

// Bitmask implements bitwise.Ops.Bitmask.
func (b *Builder) Bitmask(cond bool) Node {
	var v uint64
	if cond {
		v = b.mask
	}
	return b.record(OpBitmask, noOperand, noOperand, 0, v)
}

// Lookup implements bitwise.Ops.Lookup.
func (b *Builder) Lookup(table []Node, idx int) Node {
	sel := table[idx]
	return b.record(OpLookup, sel.id, noOperand, uint(idx), b.val(sel))
}

func (b *Builder) val(n Node) uint64 {
	return b.steps[n.id].Val
}

func (b *Builder) record(op Op, x, y int, n uint, val uint64) Node {
	b.steps = append(b.steps, Step{
		Op:  op,
		X:   x,
		Y:   y,
		N:   n,
		Val: val & b.mask,
	})
	b.stats[op]++

	return Node{
		id: len(b.steps) - 1,
	}
}

func (b *Builder) assertShift(n uint) {
	if n > b.width {
		panic("trace: shift amount out of range")
	}
}
