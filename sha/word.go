//
// word.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package sha

// MsgWord is a message word whose value may be deferred. A deferred
// word holds a thunk that is forced on first read; the result is
// memoized in place so the thunk runs exactly once no matter how
// many times the word is read afterwards.
//
// A still-deferred word must not be shared across goroutines;
// resolution is not synchronized. The engine resolves all words
// sequentially during ComputeHash, so this only matters for callers
// that read message words themselves before hashing.
type MsgWord[T any] struct {
	value   T
	pending func() T
}

// Word wraps a concrete value into a resolved message word.
func Word[T any](v T) *MsgWord[T] {
	return &MsgWord[T]{
		value: v,
	}
}

// Deferred wraps a thunk into a deferred message word.
func Deferred[T any](thunk func() T) *MsgWord[T] {
	return &MsgWord[T]{
		pending: thunk,
	}
}

// Resolve returns the word value, forcing a deferred thunk on first
// read.
func (w *MsgWord[T]) Resolve() T {
	if w.pending != nil {
		w.value = w.pending()
		w.pending = nil
	}
	return w.value
}
