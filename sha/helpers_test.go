//
// helpers_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/chacha20"

	"github.com/markkurossi/cryptl/bitwise"
)

// padBytes pads data per the block size of base and returns the
// padded byte stream.
func padBytes[T any](t *testing.T, base *Base[T], data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.Write(data)

	// FIPS 180-4 always pads, also when the message is an exact
	// number of blocks.
	lengthBits := uint64(len(data)) * 8
	if err := base.PadMessage(&buf, &lengthBits); err != nil {
		t.Fatalf("PadMessage: %v", err)
	}
	if base.PadNeeded(lengthBits) {
		t.Fatalf("message still needs padding after PadMessage")
	}
	return buf.Bytes()
}

// feedBytes pads data and appends it to the message buffer of base
// as big-endian words.
func feedBytes[T bitwise.UInt](t *testing.T, base *Base[T], data []byte) {
	t.Helper()

	words, err := PackBig[T](padBytes(t, base, data))
	if err != nil {
		t.Fatalf("PackBig: %v", err)
	}
	base.MsgInput(words...)
}

// testMessages returns deterministic pseudo-random messages of the
// given sizes, expanded from a fixed chacha20 key.
func testMessages(t *testing.T, sizes []int) [][]byte {
	t.Helper()

	key := make([]byte, chacha20.KeySize)
	nonce := make([]byte, chacha20.NonceSize)
	copy(key, []byte("cryptl sha differential vectors"))

	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		t.Fatalf("chacha20: %v", err)
	}

	var result [][]byte
	for _, size := range sizes {
		msg := make([]byte, size)
		// Stream XOR of zeros gives the keystream directly.
		c.XORKeyStream(msg, msg)
		result = append(result, msg)
	}
	return result
}

// diffSizes are the message sizes the differential tests run over:
// the empty message, sub-block sizes, the exact pad boundaries, full
// blocks, and multi-block messages for both block sizes.
var diffSizes = []int{
	0, 1, 3, 31, 55, 56, 63, 64, 65,
	111, 112, 119, 127, 128, 129, 255, 256, 1000,
}
