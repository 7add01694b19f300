//
// sha512_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

import (
	"crypto/sha512"
	"encoding/hex"
	"testing"
)

var sha512Vectors = []struct {
	msg    string
	digest string
}{
	{
		msg: "abc",
		digest: "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a" +
			"2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f",
	},
	{
		msg: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
			"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		digest: "8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018" +
			"501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909",
	},
}

var sha384Vectors = []struct {
	msg    string
	digest string
}{
	{
		msg: "",
		digest: "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf" +
			"63f6e1da274edebfe76f65fbd51ad2f14898b95b",
	},
	{
		msg: "abc",
		digest: "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a" +
			"43ff5bed8086072ba1e7cc2358baeca134c825a7",
	},
	{
		msg: "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmn" +
			"hijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu",
		digest: "09330c33f71147e83d192fc782cd1b4753111b173b3b05d22fa08086" +
			"e3b0f712fcc7c71a557e2db966c3e9fa91746039",
	},
}

func sha512Hex(t *testing.T, data []byte) string {
	t.Helper()

	s := New512()
	feedBytes(t, &s.Base, data)
	if err := s.ComputeHash(); err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	d := s.Digest()
	return hex.EncodeToString(UnpackBig(d[:]))
}

func sha384Hex(t *testing.T, data []byte) string {
	t.Helper()

	s := New384()
	feedBytes(t, &s.Base, data)
	if err := s.ComputeHash(); err != nil {
		t.Fatalf("ComputeHash: %v", err)
	}
	d := s.Digest()
	return hex.EncodeToString(UnpackBig(d[:]))
}

// TestSHA512Vectors verifies the known-answer vectors.
func TestSHA512Vectors(t *testing.T) {
	for _, vec := range sha512Vectors {
		if got := sha512Hex(t, []byte(vec.msg)); got != vec.digest {
			t.Errorf("SHA512(%q) = %s, want %s",
				vec.msg, got, vec.digest)
		}
	}
}

// TestSHA384Vectors verifies the known-answer vectors of the
// truncating variant.
func TestSHA384Vectors(t *testing.T) {
	for _, vec := range sha384Vectors {
		if got := sha384Hex(t, []byte(vec.msg)); got != vec.digest {
			t.Errorf("SHA384(%q) = %s, want %s",
				vec.msg, got, vec.digest)
		}
	}
}

// TestSHA512Differential cross-checks both variants against
// crypto/sha512 over deterministic pseudo-random messages. The empty
// message is included, covering the empty-string known answers.
func TestSHA512Differential(t *testing.T) {
	for _, msg := range testMessages(t, diffSizes) {
		want512 := sha512.Sum512(msg)
		if got := sha512Hex(t, msg); got != hex.EncodeToString(want512[:]) {
			t.Errorf("SHA512 differs from crypto/sha512 for %d-byte message: %s",
				len(msg), got)
		}
		want384 := sha512.Sum384(msg)
		if got := sha384Hex(t, msg); got != hex.EncodeToString(want384[:]) {
			t.Errorf("SHA384 differs from crypto/sha512 for %d-byte message: %s",
				len(msg), got)
		}
	}
}

// TestSHA384Truncation verifies that the SHA-384 digest is exactly
// the first six hash-state words of the full eight-word computation.
func TestSHA384Truncation(t *testing.T) {
	for _, msg := range testMessages(t, []int{0, 13, 128, 500}) {
		s := New384()
		feedBytes(t, &s.Base, msg)
		if err := s.ComputeHash(); err != nil {
			t.Fatalf("ComputeHash: %v", err)
		}

		digest := s.Digest()
		state := s.SHA512.Digest()
		for i := 0; i < 6; i++ {
			if digest[i] != state[i] {
				t.Errorf("len=%d: digest[%d] = %#x, state %#x",
					len(msg), i, digest[i], state[i])
			}
		}
	}
}
