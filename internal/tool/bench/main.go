// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Benchmark tool to compare performance between multiple suffix array
// implementations.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-files   enwik8.gz,dna.xz \
//		-sizes   1e5,1e6,1e7      \
//		-sorters ds,std
//
//	enwik8.gz:1e6 (976.56KiB, crc32:1a2b3c4d)
//		ds       34.19 MB/s
//		std      21.88 MB/s
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/dsnet/golib/strconv"

	"github.com/dsnet/sufsort/internal/tool/bench"
)

func main() {
	files := flag.String("files", "", "comma-separated list of corpus files")
	sizes := flag.String("sizes", "1e5,1e6", "comma-separated list of input sizes")
	sorters := flag.String("sorters", defaultSorters(), "comma-separated list of implementations")
	block := flag.Int("block", 1<<20, "block size for the output fingerprint")
	flag.Parse()
	if *files == "" {
		fmt.Fprintln(os.Stderr, "no corpus files specified")
		os.Exit(1)
	}

	for _, file := range strings.Split(*files, ",") {
		input, err := bench.ReadCorpus(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "unable to read corpus: %v\n", err)
			os.Exit(1)
		}
		for _, s := range strings.Split(*sizes, ",") {
			nf, err := strconv.ParsePrefix(s, strconv.AutoParse)
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid size: %q\n", s)
				os.Exit(1)
			}
			n := int(nf)
			if n > len(input) {
				n = len(input)
			}
			buf := input[:n]

			size := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
			fmt.Printf("%s:%s (%sB, crc32:%08x)\n", file, s, size, bench.Fingerprint(buf, *block))
			for _, name := range strings.Split(*sorters, ",") {
				sorter, ok := bench.Sorters[name]
				if !ok {
					fmt.Fprintf(os.Stderr, "unknown sorter: %q\n", name)
					os.Exit(1)
				}
				r := bench.BenchmarkSorter(buf, sorter)
				us := (float64(r.T.Nanoseconds()) / 1e3) / float64(r.N)
				fmt.Printf("\t%-8s %7.2f MB/s\n", name, float64(r.Bytes)/us)
			}
		}
	}
}

func defaultSorters() string {
	var s []string
	for k := range bench.Sorters {
		s = append(s, k)
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}
