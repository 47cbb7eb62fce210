package internal

import (
	"iter"
	"strconv"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[T1 any, T2 any](seqs ...iter.Seq2[T1, T2]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for _, seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Indexed yields a name built from prefix and index for every element of values.
func IterSeq2Indexed[T any](prefix string, values []T) iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for n, value := range values {
			if !yield(prefix+strconv.Itoa(n), value) {
				return
			}
		}
	}
}
