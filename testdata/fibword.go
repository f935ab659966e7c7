// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates fibword.bin. Fibonacci words are maximally repetitive binary
// strings; nearly every position is part of an LMS substring shared with
// many others, so the reduction recurses about as deeply as possible for
// inputs of this size.
package main

import "os"

const (
	name = "fibword.bin"
	size = 1 << 18
)

func main() {
	s0, s1 := []byte("a"), []byte("ab")
	for len(s1) < size {
		s0, s1 = s1, append(append(make([]byte, 0, len(s0)+len(s1)), s1...), s0...)
	}
	if err := os.WriteFile(name, s1[:size], 0664); err != nil {
		panic(err)
	}
}
