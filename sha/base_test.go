//
// base_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// TestPadNeeded verifies the padding predicate: a hashable message
// is a non-empty even number of blocks.
func TestPadNeeded(t *testing.T) {
	s := New256()

	if !s.PadNeeded(0) {
		t.Errorf("PadNeeded(0) = false")
	}
	for _, bits := range []uint64{1, 8, 511, 513, 1023} {
		if !s.PadNeeded(bits) {
			t.Errorf("PadNeeded(%d) = false", bits)
		}
	}
	for _, bits := range []uint64{512, 1024, 512 * 100} {
		if s.PadNeeded(bits) {
			t.Errorf("PadNeeded(%d) = true", bits)
		}
	}

	s512 := New512()
	if !s512.PadNeeded(512) {
		t.Errorf("1024-bit blocks: PadNeeded(512) = false")
	}
	if s512.PadNeeded(1024) {
		t.Errorf("1024-bit blocks: PadNeeded(1024) = true")
	}
}

// TestPadMessageRoundTrip verifies the padding byte stream for all
// message lengths up to several blocks: the padded length is an
// exact positive number of blocks, the padding starts with 0x80, and
// the trailing length field holds the big-endian bit length of the
// unpadded message.
func TestPadMessageRoundTrip(t *testing.T) {
	for msgLen := 0; msgLen <= 300; msgLen++ {
		data := make([]byte, msgLen)
		for i := range data {
			data[i] = byte(i)
		}

		verifyPadding(t, padBytes(t, &New256().Base, data),
			msgLen, 64, 8)
		verifyPadding(t, padBytes(t, &New512().Base, data),
			msgLen, 128, 16)
	}
}

func verifyPadding(t *testing.T, padded []byte, msgLen, blockBytes,
	lengthBytes int) {
	t.Helper()

	if len(padded) == 0 || len(padded)%blockBytes != 0 {
		t.Fatalf("len=%d: padded length %d is not a positive number of %d-byte blocks",
			msgLen, len(padded), blockBytes)
	}
	if padded[msgLen] != 0x80 {
		t.Errorf("len=%d: padding starts with %#x, not 0x80",
			msgLen, padded[msgLen])
	}
	for i := msgLen + 1; i < len(padded)-lengthBytes; i++ {
		if padded[i] != 0 {
			t.Errorf("len=%d: non-zero pad byte %#x at %d",
				msgLen, padded[i], i)
		}
	}
	// The upper 64 bits of a 128-bit length field are always zero.
	for i := len(padded) - lengthBytes; i < len(padded)-8; i++ {
		if padded[i] != 0 {
			t.Errorf("len=%d: non-zero upper length byte at %d",
				msgLen, i)
		}
	}
	lengthBits := binary.BigEndian.Uint64(padded[len(padded)-8:])
	if lengthBits != uint64(msgLen)*8 {
		t.Errorf("len=%d: length field %d, expected %d",
			msgLen, lengthBits, msgLen*8)
	}
}

// TestPadMessageCounter verifies that PadMessage advances the
// running bit-length counter for every byte it writes.
func TestPadMessageCounter(t *testing.T) {
	s := New256()

	var buf bytes.Buffer
	lengthBits := uint64(3 * 8)
	buf.Write([]byte("abc"))

	if err := s.PadMessage(&buf, &lengthBits); err != nil {
		t.Fatalf("PadMessage: %v", err)
	}
	if lengthBits != uint64(buf.Len())*8 {
		t.Errorf("counter %d bits, stream %d bits",
			lengthBits, buf.Len()*8)
	}
	if lengthBits != 512 {
		t.Errorf("3-byte message padded to %d bits, expected 512",
			lengthBits)
	}
}

// TestComputeHashPreconditions verifies that an empty or unpadded
// message buffer is rejected with a typed error.
func TestComputeHashPreconditions(t *testing.T) {
	s := New256()

	if err := s.ComputeHash(); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("empty buffer: got %v, expected ErrEmptyMessage", err)
	}

	s.MsgInput(1, 2, 3)
	if err := s.ComputeHash(); !errors.Is(err, ErrPartialBlock) {
		t.Errorf("partial block: got %v, expected ErrPartialBlock", err)
	}

	// ClearMessage followed by ComputeHash is a precondition
	// failure, not a silent digest of the previous message.
	s.ClearMessage()
	if err := s.ComputeHash(); !errors.Is(err, ErrEmptyMessage) {
		t.Errorf("after ClearMessage: got %v, expected ErrEmptyMessage",
			err)
	}
}

// TestClearMessageRerun verifies that an instance can be reused:
// clearing the message and hashing new content resets the hash state
// and yields the new message's digest.
func TestClearMessageRerun(t *testing.T) {
	s := New256()
	ref := New256()

	feedBytes(t, &s.Base, []byte("first message"))
	if err := s.ComputeHash(); err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	first := s.Digest()

	s.ClearMessage()
	if s.MsgLenWords() != 0 {
		t.Fatalf("ClearMessage left %d words", s.MsgLenWords())
	}
	feedBytes(t, &s.Base, []byte("second message"))
	if err := s.ComputeHash(); err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	second := s.Digest()

	if first == second {
		t.Errorf("digest did not change over distinct messages")
	}

	feedBytes(t, &ref.Base, []byte("second message"))
	if err := ref.ComputeHash(); err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	if second != ref.Digest() {
		t.Errorf("rerun digest differs from a fresh instance")
	}
}

// TestDeferredOneShot verifies that a deferred message word is
// resolved exactly once and memoized.
func TestDeferredOneShot(t *testing.T) {
	var count int
	w := Deferred(func() uint32 {
		count++
		return 0xdeadbeef
	})

	for i := 0; i < 5; i++ {
		if got := w.Resolve(); got != 0xdeadbeef {
			t.Fatalf("Resolve %d = %#x", i, got)
		}
	}
	if count != 1 {
		t.Errorf("thunk ran %d times", count)
	}
}

// TestDeferredInHash verifies that deferred words feed the hash
// computation transparently and each thunk runs exactly once even
// when the instance is rerun.
func TestDeferredInHash(t *testing.T) {
	data := []byte("deferred message words")

	ref := New256()
	feedBytes(t, &ref.Base, data)
	if err := ref.ComputeHash(); err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}

	words, err := PackBig[uint32](padBytes(t, &New256().Base, data))
	if err != nil {
		t.Fatalf("PackBig: %v", err)
	}

	s := New256()
	counts := make([]int, len(words))
	for i, w := range words {
		s.MsgInputDeferred(func() uint32 {
			counts[i]++
			return w
		})
	}

	// Two runs over the same buffer: the memoized values are reused,
	// the thunks do not run again.
	for run := 0; run < 2; run++ {
		if err := s.ComputeHash(); err != nil {
			t.Fatalf("ComputeHash: %v", err)
		}
		if s.Digest() != ref.Digest() {
			t.Errorf("run %d: deferred digest differs", run)
		}
	}
	for i, count := range counts {
		if count != 1 {
			t.Errorf("word %d thunk ran %d times", i, count)
		}
	}
}

// TestMsgInputWord verifies the single-word input path with mixed
// resolved and deferred words.
func TestMsgInputWord(t *testing.T) {
	data := []byte("mixed input words")

	ref := New256()
	feedBytes(t, &ref.Base, data)
	if err := ref.ComputeHash(); err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}

	words, err := PackBig[uint32](padBytes(t, &New256().Base, data))
	if err != nil {
		t.Fatalf("PackBig: %v", err)
	}

	s := New256()
	for i, w := range words {
		if i%2 == 0 {
			s.MsgInputWord(Word(w))
		} else {
			s.MsgInputWord(Deferred(func() uint32 { return w }))
		}
	}
	if err := s.ComputeHash(); err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	if s.Digest() != ref.Digest() {
		t.Errorf("mixed input digest differs")
	}
}
