//
// doc.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package sha implements the SHA family of hash functions (FIPS PUB
// 180-4, NIST March 2012) over the bitwise operation set:
//
//	Algorithm   Message Size   Block Size   Word Size   Digest Size
//	            (bits)         (bits)       (bits)      (bits)
//	SHA-1       < 2^64         512          32          160
//	SHA-224     < 2^64         512          32          224
//	SHA-256     < 2^64         512          32          256
//	SHA-384     < 2^128        1024         64          384
//	SHA-512     < 2^128        1024         64          512
//
// The algorithms are generic over the word type and perform every
// bitwise step through a bitwise.Ops implementation. Instantiated
// with bitwise.Int they compute ordinary digests; instantiated with
// a symbolic operation set, such as the trace package, the same code
// records the computation structure instead. The New1, New224,
// New256, New384, and New512 constructors bind the native word
// types.
//
// Callers feed message words with MsgInput, pad the byte stream with
// PadMessage, and run ComputeHash. The message must be an exact
// positive number of blocks when ComputeHash runs; unpadded input is
// rejected with a typed error.
package sha
