//
// base.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"errors"
	"io"
)

// Block size in message words, common to all SHA variants: 16 words
// of 32 bits for the 512-bit block family, 16 words of 64 bits for
// the 1024-bit block family.
const blockWords = 16

// ComputeHash errors.
var (
	// ErrEmptyMessage is returned when ComputeHash runs on an empty
	// message buffer.
	ErrEmptyMessage = errors.New("empty message")

	// ErrPartialBlock is returned when the message bit length is not
	// a multiple of the block size i.e. the message has not been
	// padded.
	ErrPartialBlock = errors.New("message is not an even number of blocks")
)

// blockAlgorithm defines the extension points a hash variant
// supplies to the generic block-processing skeleton. The methods
// correspond to the phases of FIPS 180-4 section 6: setting the
// initial hash value, preparing the message schedule for the next
// block, loading the working variables, running the compression
// rounds, folding the working variables back into the hash value,
// and post-processing after the last block.
type blockAlgorithm[T any] interface {
	initHashValue()
	prepMsgSchedule(msgIndex *int)
	initWorkingVars()
	workingLoop()
	updateHash()
	afterHash()
}

// Base implements the parts of hash computation that are common to
// all SHA variants: the message buffer, padding, and the fixed
// block-processing loop. A variant embeds Base and registers itself
// as the block algorithm.
//
// A Base instance is exclusively owned by its caller. The only
// supported call sequence is append, compute, read; no method is
// safe for concurrent use on the same instance.
type Base[T any] struct {
	alg      blockAlgorithm[T]
	wordBits uint
	msg      []*MsgWord[T]
}

// MsgInput appends words to the message.
func (b *Base[T]) MsgInput(words ...T) {
	for _, w := range words {
		b.msg = append(b.msg, Word(w))
	}
}

// MsgInputWord appends a single, possibly deferred, message word.
func (b *Base[T]) MsgInputWord(w *MsgWord[T]) {
	b.msg = append(b.msg, w)
}

// MsgInputDeferred appends deferred words to the message. Each thunk
// is forced on first read during hash computation and runs exactly
// once.
func (b *Base[T]) MsgInputDeferred(thunks ...func() T) {
	for _, thunk := range thunks {
		b.msg = append(b.msg, Deferred(thunk))
	}
}

// ClearMessage resets the message buffer to empty. It does not touch
// the hash value; ComputeHash reinitializes that on every run.
func (b *Base[T]) ClearMessage() {
	b.msg = nil
}

// MsgLenWords returns the number of words in the message buffer.
func (b *Base[T]) MsgLenWords() int {
	return len(b.msg)
}

// BlockSizeBits returns the block size in bits: 512 for the 32-bit
// word variants, 1024 for the 64-bit word variants.
func (b *Base[T]) BlockSizeBits() uint64 {
	return blockWords * uint64(b.wordBits)
}

// WordSizeBits returns the word size in bits.
func (b *Base[T]) WordSizeBits() uint {
	return b.wordBits
}

// PadNeeded reports whether a message of lengthBits bits needs
// padding before it can be hashed: a hashable message is a non-empty
// even number of blocks.
func (b *Base[T]) PadNeeded(lengthBits uint64) bool {
	return lengthBits == 0 || lengthBits%b.BlockSizeBits() != 0
}

// PadMessage appends the FIPS 180-4 padding to the message byte
// stream out: the byte 0x80, zero bytes up to the length field, and
// the big-endian bit length of the unpadded message. The 1024-bit
// block variants reserve a 128-bit length field; its upper 64 bits
// are always zero since message sizes are limited to below 2^64 bits
// in this implementation. The running bit-length counter is advanced
// for every byte written.
func (b *Base[T]) PadMessage(out io.ByteWriter, lengthBits *uint64) error {
	msgLengthBits := *lengthBits

	// Append bit "1" to the end of the message.
	if err := b.append(out, lengthBits, 0x80); err != nil {
		return err
	}

	// Pad with zero bytes up to the length field at the end of the
	// last block.
	stopPadBits := b.BlockSizeBits() - 2*uint64(b.wordBits)
	for *lengthBits%b.BlockSizeBits() != stopPadBits {
		if err := b.append(out, lengthBits, 0x00); err != nil {
			return err
		}
	}

	// Append the bit length of the original message.
	if b.BlockSizeBits() == 1024 {
		for i := 0; i < 8; i++ {
			if err := b.append(out, lengthBits, 0x00); err != nil {
				return err
			}
		}
	}
	for i := 7; i >= 0; i-- {
		c := byte(msgLengthBits >> (i * 8))
		if err := b.append(out, lengthBits, c); err != nil {
			return err
		}
	}
	return nil
}

// ComputeHash runs the hash computation over the buffered message.
// The message must be a non-empty even number of blocks; otherwise
// ComputeHash returns ErrEmptyMessage or ErrPartialBlock without
// touching the hash state. The hash value is reinitialized on every
// call, so rerunning after further MsgInput calls hashes the new
// buffer content from scratch.
func (b *Base[T]) ComputeHash() error {
	if len(b.msg) == 0 {
		return ErrEmptyMessage
	}
	if len(b.msg)%blockWords != 0 {
		return ErrPartialBlock
	}

	b.alg.initHashValue()

	msgIndex := 0
	for msgIndex < len(b.msg) {
		b.alg.prepMsgSchedule(&msgIndex)
		b.alg.initWorkingVars()
		b.alg.workingLoop()
		b.alg.updateHash()
	}

	b.alg.afterHash()

	return nil
}

// msgWord returns the message word at index, resolving a deferred
// value in place, and advances the index.
func (b *Base[T]) msgWord(index *int) T {
	w := b.msg[*index]
	*index++
	return w.Resolve()
}

func (b *Base[T]) append(out io.ByteWriter, lengthBits *uint64,
	c byte) error {

	if err := out.WriteByte(c); err != nil {
		return err
	}
	*lengthBits += 8
	return nil
}
