// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of multiple suffix array
// implementations with respect to construction speed. Individual
// implementations are referred to as sorters.
package bench

import (
	"hash/crc32"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dsnet/golib/hashutil"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"github.com/dsnet/sufsort"
)

// A Sorter computes the suffix array of t into sa[:len(t)].
type Sorter func(t []byte, sa []int32) error

// Sorters holds every registered implementation.
var Sorters = map[string]Sorter{}

func RegisterSorter(name string, s Sorter) {
	Sorters[name] = s
}

// ReadCorpus reads a corpus file, transparently decompressing it when the
// name carries a .gz or .xz extension. Corpus files are usually shipped
// compressed since suffix sorting inputs are large and compress well.
func ReadCorpus(file string) ([]byte, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	switch filepath.Ext(file) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case ".xz":
		zr, err := xz.NewReader(f)
		if err != nil {
			return nil, err
		}
		r = zr
	}
	return io.ReadAll(r)
}

// BenchmarkSorter benchmarks a single implementation on the given input
// and reports the result.
func BenchmarkSorter(input []byte, sorter Sorter) testing.BenchmarkResult {
	sa := make([]int32, len(input))
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if err := sorter(input, sa); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

// Fingerprint transforms the corpus in fixed-size blocks and combines the
// per-block checksums of the transformed output. Matching fingerprints
// across machines and runs demonstrate that the output is deterministic.
func Fingerprint(buf []byte, blockSize int) uint32 {
	sa := make([]int32, blockSize)
	u := make([]byte, blockSize)
	var crc uint32
	for len(buf) > 0 {
		n := blockSize
		if n > len(buf) {
			n = len(buf)
		}
		if _, err := sufsort.BWT(buf[:n], u[:n], sa[:n]); err != nil {
			panic(err)
		}
		crc = hashutil.CombineCRC32(crc32.IEEE, crc, crc32.ChecksumIEEE(u[:n]), int64(n))
		buf = buf[n:]
	}
	return crc
}
