// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sufsort implements linear time construction of the suffix array
// and the Burrows-Wheeler transform of a byte string.
//
// The construction is based on the SA-IS (Suffix Array by Induced Sorting)
// methodology by Nong, Zhang, and Chan. Both operations run in O(n) time and
// operate directly on caller-provided buffers; any capacity of the integer
// buffer beyond len(t) is used as scratch space, allowing faster internal
// configurations to be selected without extra heap allocation.
//
// References:
//	https://sites.google.com/site/yuta256/sais
//	https://ge-nong.googlecode.com/files/Two%20Efficient%20Algorithms%20for%20Linear%20Time%20Suffix%20Array%20Construction.pdf
package sufsort

import "github.com/dsnet/sufsort/internal/sais"

// maxBufferLen bounds the total working buffer such that every position,
// including transient marker values, fits in a signed 32-bit integer.
const maxBufferLen = 1<<31 - 1

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "sufsort: " + string(e) }

var (
	// ErrInvalid indicates that the provided buffers have invalid sizes.
	ErrInvalid error = Error("invalid buffer sizes")
)

// SuffixArray computes the suffix array of t and writes it to sa[:len(t)].
//
// The buffer sa must be at least len(t) long; any additional length is used
// as scratch space by the construction. Suffixes are ordered as if each were
// terminated by a sentinel smaller than any symbol, so that no suffix is
// ordered after one that it is a proper prefix of. On success, sa[:len(t)]
// is a permutation of [0, len(t)) and sa[len(t):] holds unspecified values.
func SuffixArray(t []byte, sa []int32) error {
	if len(sa) < len(t) || int64(len(sa)) > maxBufferLen {
		return ErrInvalid
	}
	if len(t) < 2 {
		if len(t) == 1 {
			sa[0] = 0
		}
		return nil
	}
	sais.ComputeSA(t, sa)
	return nil
}

// BWT computes the Burrows-Wheeler transform of t, writes the transformed
// string to u, and returns the primary index. The buffer u must be the same
// length as t and may alias it. The buffer sa follows the same rules as in
// SuffixArray and holds unspecified values on return.
//
// The transform uses the implicit-sentinel convention: u[0] = t[len(t)-1],
// the remaining bytes are the symbols preceding each nonzero suffix in
// sorted order, and the primary index identifies where the row of the
// original string sorts. For len(t) == 0, the primary index is 0; for
// len(t) == 1, u[0] = t[0] and the primary index is 1.
func BWT(t, u []byte, sa []int32) (primary int, err error) {
	if len(u) != len(t) || len(sa) < len(t) || int64(len(sa)) > maxBufferLen {
		return 0, ErrInvalid
	}
	switch len(t) {
	case 0:
		return 0, nil
	case 1:
		u[0] = t[0]
		return 1, nil
	}
	return sais.ComputeBWT(t, u, sa), nil
}
