// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package sufsort

import (
	"bytes"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/dsnet/sufsort/internal/testutil"
)

// naiveSA constructs the suffix array by direct comparison sorting.
// bytes.Compare orders a proper prefix before any suffix it prefixes,
// which matches the implicit-sentinel convention.
func naiveSA(t []byte) []int32 {
	sa := make([]int32, len(t))
	for i := range sa {
		sa[i] = int32(i)
	}
	sort.Slice(sa, func(i, j int) bool {
		return bytes.Compare(t[sa[i]:], t[sa[j]:]) < 0
	})
	return sa
}

func TestSuffixArray(t *testing.T) {
	vectors := []struct {
		input  string  // The input test string
		output []int32 // Expected suffix array
	}{{
		input:  "",
		output: []int32{},
	}, {
		input:  "\x42",
		output: []int32{0},
	}, {
		input:  "ab",
		output: []int32{0, 1},
	}, {
		input:  "ba",
		output: []int32{1, 0},
	}, {
		input:  "aa",
		output: []int32{1, 0},
	}, {
		input:  "aaaa",
		output: []int32{3, 2, 1, 0},
	}, {
		input:  "banana",
		output: []int32{5, 3, 1, 0, 4, 2},
	}, {
		input:  "mississippi",
		output: []int32{10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2},
	}, {
		input:  "abracadabra",
		output: []int32{10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2},
	}, {
		input:  "abcabcabc",
		output: []int32{6, 3, 0, 7, 4, 1, 8, 5, 2},
	}, {
		input:  "SIX.MIXED.PIXIES.SIFT.SIXTY.PIXIE.DUST.BOXES",
		output: nil, // verified against naiveSA below
	}}

	for i, v := range vectors {
		input := []byte(v.input)
		sa := make([]int32, len(input))
		if err := SuffixArray(input, sa); err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		want := v.output
		if want == nil {
			want = naiveSA(input)
		}
		if d := cmp.Diff(sa, want, cmpopts.EquateEmpty()); d != "" {
			t.Errorf("test %d, suffix array mismatch (-got +want):\n%s", i, d)
		}
	}
}

func TestSuffixArrayErrors(t *testing.T) {
	if err := SuffixArray(make([]byte, 8), make([]int32, 7)); err != ErrInvalid {
		t.Errorf("undersized buffer: got %v, want %v", err, ErrInvalid)
	}
	if _, err := BWT(make([]byte, 8), make([]byte, 7), make([]int32, 8)); err != ErrInvalid {
		t.Errorf("mismatched output buffer: got %v, want %v", err, ErrInvalid)
	}
	if _, err := BWT(make([]byte, 8), make([]byte, 8), make([]int32, 4)); err != ErrInvalid {
		t.Errorf("undersized work buffer: got %v, want %v", err, ErrInvalid)
	}
}

func TestSuffixArrayRandom(t *testing.T) {
	rand := testutil.NewRand(0)
	sizes := []int{2, 3, 5, 8, 13, 64, 255, 256, 257, 511, 512, 513, 1000, 4096}
	alphabets := []int{1, 2, 3, 4, 16, 256}
	slacks := []int{0, 1, 255, 512, 1024, 1536, 2048}

	for _, n := range sizes {
		for _, k := range alphabets {
			input := rand.BytesN(n, k)
			want := naiveSA(input)
			var first []int32
			for _, fs := range slacks {
				sa := make([]int32, n+fs)
				if err := SuffixArray(input, sa); err != nil {
					t.Fatalf("n=%d k=%d fs=%d, unexpected error: %v", n, k, fs, err)
				}
				if d := cmp.Diff(sa[:n], want); d != "" {
					t.Errorf("n=%d k=%d fs=%d, suffix array mismatch (-got +want):\n%s", n, k, fs, d)
				}
				if first == nil {
					first = sa[:n]
				} else if d := cmp.Diff(sa[:n], first); d != "" {
					t.Errorf("n=%d k=%d fs=%d, output depends on slack (-got +want):\n%s", n, k, fs, d)
				}
			}
		}
	}
}

func TestSuffixArrayLarge(t *testing.T) {
	// n equal to the square of the alphabet size forces at least one
	// recursion level on typical random data.
	input := testutil.NewRand(7).Bytes(256 * 256)
	sa := make([]int32, len(input))
	if err := SuffixArray(input, sa); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := cmp.Diff(sa, naiveSA(input)); d != "" {
		t.Errorf("suffix array mismatch (-got +want):\n%s", d)
	}
}

func TestSuffixArrayRepetitive(t *testing.T) {
	for _, n := range []int{2, 3, 89, 144, 6765, 10946} {
		input := testutil.FibonacciWord(n, 'a', 'b')
		sa := make([]int32, n)
		if err := SuffixArray(input, sa); err != nil {
			t.Fatalf("n=%d, unexpected error: %v", n, err)
		}
		if d := cmp.Diff(sa, naiveSA(input)); d != "" {
			t.Errorf("n=%d, suffix array mismatch (-got +want):\n%s", n, d)
		}
	}

	// A single repeated symbol sorts suffixes by descending position.
	for _, n := range []int{1, 2, 255, 256, 300} {
		input := bytes.Repeat([]byte{'z'}, n)
		sa := make([]int32, n)
		if err := SuffixArray(input, sa); err != nil {
			t.Fatalf("n=%d, unexpected error: %v", n, err)
		}
		for i, p := range sa {
			if int(p) != n-1-i {
				t.Errorf("n=%d, sa[%d] = %d, want %d", n, i, p, n-1-i)
				break
			}
		}
	}
}

func TestSuffixArrayDeterminism(t *testing.T) {
	input := testutil.NewRand(3).BytesN(4096, 4)
	sa0 := make([]int32, len(input))
	sa1 := make([]int32, len(input)+999)
	if err := SuffixArray(input, sa0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := SuffixArray(input, sa1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := cmp.Diff(sa0, sa1[:len(input)]); d != "" {
		t.Errorf("non-deterministic output (-got +want):\n%s", d)
	}
}
