// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build gofuzz
// +build gofuzz

// This file exists to export an entry point for fuzz testing.

package sufsort

import "bytes"

func Fuzz(data []byte) int {
	n := len(data)
	sa := make([]int32, n)
	if err := SuffixArray(data, sa); err != nil {
		panic(err)
	}
	seen := make([]bool, n)
	for _, p := range sa {
		if p < 0 || int(p) >= n || seen[p] {
			panic("not a permutation")
		}
		seen[p] = true
	}
	for i := 0; i+1 < n; i++ {
		if bytes.Compare(data[sa[i]:], data[sa[i+1]:]) >= 0 {
			panic("suffixes out of order")
		}
	}

	u := make([]byte, n)
	p, err := BWT(data, u, sa)
	if err != nil {
		panic(err)
	}
	if n > 0 && (u[0] != data[n-1] || p < 1 || p > n) {
		panic("invalid transform")
	}
	return 1
}
