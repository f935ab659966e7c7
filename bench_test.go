// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sufsort

import (
	"testing"

	"github.com/dsnet/sufsort/internal/testutil"
)

var benchInputs = []struct {
	name  string
	input []byte
}{
	{"Binary", testutil.NewRand(0).Bytes(1 << 20)},
	{"Text", testutil.NewRand(0).BytesN(1<<20, 64)},
	{"Digits", testutil.NewRand(0).BytesN(1<<20, 10)},
	{"Fibonacci", testutil.FibonacciWord(1<<20, 'a', 'b')},
}

func BenchmarkSuffixArray(b *testing.B) {
	for _, v := range benchInputs {
		sa := make([]int32, len(v.input))
		b.Run(v.name, func(b *testing.B) {
			b.SetBytes(int64(len(v.input)))
			for i := 0; i < b.N; i++ {
				if err := SuffixArray(v.input, sa); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBWT(b *testing.B) {
	for _, v := range benchInputs {
		sa := make([]int32, len(v.input))
		u := make([]byte, len(v.input))
		b.Run(v.name, func(b *testing.B) {
			b.SetBytes(int64(len(v.input)))
			for i := 0; i < b.N; i++ {
				if _, err := BWT(v.input, u, sa); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
