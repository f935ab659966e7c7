// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"io"
	"os"
)

// LoadFile loads the first n bytes of the input file. If n is less than zero,
// then it will return the input file as is. If the file is smaller than n,
// then it will replicate the input until it matches n. Each copy will be XORed
// by some mask to avoid favoring algorithms that exploit exact repetitions.
func LoadFile(file string, n int) ([]byte, error) {
	input, err := os.ReadFile(file)
	switch {
	case err != nil:
		return nil, err
	case n < 0:
		return input, nil
	case len(input) >= n:
		return input[:n], nil
	case len(input) == 0:
		return nil, io.ErrNoProgress // Can't replicate an empty string
	}

	var mask byte
	output := make([]byte, n)
	for i := range output {
		idx := i % len(input)
		output[i] = input[idx] ^ mask
		if idx == len(input)-1 {
			mask++
		}
	}
	return output, nil
}

// MustLoadFile must load a file or else panics.
func MustLoadFile(file string, n int) []byte {
	b, err := LoadFile(file, n)
	if err != nil {
		panic(err)
	}
	return b
}

// FibonacciWord returns the prefix of length n of the infinite Fibonacci
// word over the two given symbols. Such inputs are highly repetitive and
// drive the LMS reduction through many recursion levels.
func FibonacciWord(n int, a, b byte) []byte {
	s0, s1 := []byte{a}, []byte{a, b}
	for len(s1) < n {
		s0, s1 = s1, append(append(make([]byte, 0, len(s0)+len(s1)), s1...), s0...)
	}
	return s1[:n]
}
