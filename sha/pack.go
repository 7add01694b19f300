//
// pack.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"fmt"

	"github.com/markkurossi/cryptl/bitwise"
)

// PackBig packs a byte stream into big-endian words of the native
// type T. It is a host-side adapter for feeding padded byte messages
// into the native instantiations; it is not part of the operation-set
// boundary and works on native bytes only.
func PackBig[T bitwise.UInt](data []byte) ([]T, error) {
	var ops bitwise.Int[T]

	size := int(ops.Width() / 8)
	if len(data)%size != 0 {
		return nil, fmt.Errorf("data length %d is not a multiple of the %d-byte word size",
			len(data), size)
	}

	words := make([]T, len(data)/size)
	for i := range words {
		var w T
		for j := 0; j < size; j++ {
			w = w<<8 | T(data[i*size+j])
		}
		words[i] = w
	}
	return words, nil
}

// UnpackBig serializes native words into big-endian bytes, the
// digest byte convention of FIPS 180-4.
func UnpackBig[T bitwise.UInt](words []T) []byte {
	var ops bitwise.Int[T]

	size := int(ops.Width() / 8)
	result := make([]byte, len(words)*size)
	for i, w := range words {
		for j := size - 1; j >= 0; j-- {
			result[i*size+j] = byte(w)
			w >>= 8
		}
	}
	return result
}
