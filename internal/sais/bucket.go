// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sais

// The integer core sizes its bucket table by how much slack the caller left
// at the tail of SA, in multiples of the alphabet size k. The configurations
// differ only in which rows are materialized; the scans are invariant.
//
//	6k: counts, cursors, pristine starts and ends, distinct-name table
//	4k: counts, cursors, distinct-name table
//	2k: counts, cursors
//	1k: one shared row; counts are rebuilt by rescanning T as needed
const (
	layout1K = iota
	layout2K
	layout4K
	layout6K
)

// A buckets value carves one bucket configuration out of a contiguous
// integer buffer.
type buckets struct {
	C []int32 // per-symbol total counts
	B []int32 // working cursor row, rebuilt for each scan direction
	S []int32 // pristine start pointers (6k configuration only)
	E []int32 // pristine end pointers (6k configuration only)
	D []int32 // distinct-name table, 2*k wide (6k and 4k configurations)

	shared bool // B aliases C, so counts die with every cursor rebuild
}

func getCountsByte(T []byte, C []int32, n int) {
	var i int
	for i = 0; i < len(C); i++ {
		C[i] = 0
	}
	for i = 0; i < n; i++ {
		C[T[i]]++
	}
}

func getCountsInt(T []int32, C []int32, n int) {
	var i int
	for i = 0; i < len(C); i++ {
		C[i] = 0
	}
	for i = 0; i < n; i++ {
		C[T[i]]++
	}
}

func getBuckets(C, B []int32, k int, end bool) {
	var i int
	var sum int32
	if end {
		for i = 0; i < k; i++ {
			sum += C[i]
			B[i] = sum
		}
	} else {
		for i = 0; i < k; i++ {
			sum += C[i]
			B[i] = sum - C[i]
		}
	}
}

// prepareByte rebuilds the working cursor row for one scan direction.
func (bk *buckets) prepareByte(T []byte, n, k int, end bool) {
	if bk.shared {
		getCountsByte(T, bk.C, n)
	}
	switch {
	case end && bk.E != nil:
		copy(bk.B, bk.E)
	case !end && bk.S != nil:
		copy(bk.B, bk.S)
	default:
		getBuckets(bk.C, bk.B, k, end)
	}
}

// prepareInt rebuilds the working cursor row for one scan direction,
// recounting symbols first if the configuration shares a single row.
func (bk *buckets) prepareInt(T []int32, n, k int, end bool) {
	if bk.shared {
		getCountsInt(T, bk.C, n)
	}
	switch {
	case end && bk.E != nil:
		copy(bk.B, bk.E)
	case !end && bk.S != nil:
		copy(bk.B, bk.S)
	default:
		getBuckets(bk.C, bk.B, k, end)
	}
}
