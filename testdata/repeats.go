// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build ignore
// +build ignore

// Generates repeats.bin. The corpus consists mostly of copies from some
// distance earlier in the stream, producing the long equal-rank runs and
// deep reductions that dominate suffix sorting time on real data.
package main

import (
	"math/rand"
	"os"
)

const (
	name = "repeats.bin"
	size = 1 << 18
)

func main() {
	var b []byte
	r := rand.New(rand.NewSource(0))

	randLen := func() int {
		l := 4 << uint(r.Intn(7)) // 4..256
		return l + r.Intn(l)
	}

	randDist := func() int {
		for {
			d := 1 << uint(r.Intn(15)) // 1..16384
			d += r.Intn(d)
			if d <= len(b) {
				return d
			}
		}
	}

	writeRand := func(l int) {
		for i := 0; i < l; i++ {
			b = append(b, byte(r.Int()))
		}
	}

	writeCopy := func(d, l int) {
		for i := 0; i < l; i++ {
			b = append(b, b[len(b)-d])
		}
	}

	writeRand(randLen())
	for len(b) < size {
		p := r.Float32()
		switch {
		case p <= 0.1:
			// Generate random new data.
			writeRand(randLen())
		case p <= 0.9:
			// Write a long distance copy.
			d, l := randDist(), randLen()
			for d <= l {
				d, l = randDist(), randLen()
			}
			writeCopy(d, l)
		default:
			// Write a possibly overlapping short distance copy.
			writeCopy(randDist(), randLen())
		}
	}

	if err := os.WriteFile(name, b[:size], 0664); err != nil {
		panic(err)
	}
}
