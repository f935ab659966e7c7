// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package sais implements a linear time suffix array and Burrows-Wheeler
// transform construction engine using induced sorting.
//
// The engine reduces the input to the string of its LMS-substring ranks,
// solves the reduced problem recursively, and induces the final order from
// the sorted LMS suffixes. All working memory beyond one bucket table comes
// from the slack at the tail of the caller's SA buffer, except that the
// integer core allocates one row of k counters when less than k of slack is
// left; the wider the slack, the larger the bucket configuration the integer
// core selects.
package sais

const (
	// alphabetSize is the symbol range of the outer byte entry.
	alphabetSize = 256

	// maxOnlineLen bounds inputs for the online naming scans, which offset
	// stored positions by +n and therefore need one extra value bit.
	maxOnlineLen = 0x3fffffff
)

// ComputeSA computes the suffix array of T and places it in SA[:len(T)].
// SA must be at least len(T) long; any additional length is used as scratch
// space. The remainder of SA holds unspecified values on return.
func ComputeSA(T []byte, SA []int32) {
	if len(SA) < len(T) {
		panic("sais: mismatching buffer sizes")
	}
	n := len(T)
	if n < 2 {
		if n == 1 {
			SA[0] = 0
		}
		return
	}
	computeByte(T, SA, len(SA)-n, n)
}

// ComputeBWT computes the Burrows-Wheeler transform of T, places it in U,
// and returns the primary index. U must be the same length as T and may
// alias it. SA follows the same rules as in ComputeSA and is left in an
// unspecified state.
func ComputeBWT(T, U []byte, SA []int32) int {
	if len(U) != len(T) || len(SA) < len(T) {
		panic("sais: mismatching buffer sizes")
	}
	n := len(T)
	if n < 2 {
		if n == 1 {
			U[0] = T[0]
		}
		return n
	}
	computeByte(T, SA, len(SA)-n, n)

	// Replace each entry by the symbol that precedes its suffix, recording
	// where the whole string itself sorted. The byte values transit through
	// SA so that U may alias T.
	var z int
	for i := 0; i < n; i++ {
		if j := int(SA[i]); j == 0 {
			z = i
			SA[i] = int32(T[n-1])
		} else {
			SA[i] = int32(T[j-1])
		}
	}
	U[0] = byte(SA[z])
	for i := 0; i < z; i++ {
		U[i+1] = byte(SA[i])
	}
	for i := z + 1; i < n; i++ {
		U[i] = byte(SA[i])
	}
	return z + 1
}

// postProcLMS2 compacts the sorted LMS positions into SA[:m] and converts
// the group markers produced by the online scans into consecutive names in
// the upper half of SA. It reports the number of distinct names.
func postProcLMS2(SA []int32, n, m int) int {
	var i, j, d, name int

	// Compact all the sorted LMS substrings into the first m items of SA.
	for i = 0; SA[i] < 0; i++ {
		j = int(^SA[i])
		if n <= j {
			name++
		}
		SA[i] = int32(j)
	}
	if i < m {
		for d, i = i, i+1; ; i++ {
			if j = int(SA[i]); j < 0 {
				j = ^j
				if n <= j {
					name++
				}
				SA[d] = int32(j)
				d++
				SA[i] = 0
				if d == m {
					break
				}
			}
		}
	}

	if name < m {
		// Store the lexicographic names.
		for i, d = m-1, name+1; i >= 0; i-- {
			if j = int(SA[i]); n <= j {
				j -= n
				d--
			}
			SA[m+(j>>1)] = int32(d)
		}
	} else {
		// All names are unique; unset the group markers.
		for i = 0; i < m; i++ {
			if j = int(SA[i]); n <= j {
				SA[i] = int32(j - n)
			}
		}
	}
	return name
}
