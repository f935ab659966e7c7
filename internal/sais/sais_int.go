// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// ====================================================
// Copyright (c) 2008-2010 Yuta Mori All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person
// obtaining a copy of this software and associated documentation
// files (the "Software"), to deal in the Software without
// restriction, including without limitation the rights to use,
// copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following
// conditions:
//
// The above copyright notice and this permission notice shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
// NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT
// HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY,
// WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
// ====================================================

package sais

// sortLMS1Int derives a sorted order of the LMS substrings with two induced
// scans, marking induced S-type candidates with a bitwise complement.
func sortLMS1Int(T, SA []int32, bk *buckets, n, k int) {
	var b, i, j int
	var c0, c1 int

	// Left-to-right scan over the L-side cursors.
	bk.prepareInt(T, n, k, false)
	j = n - 1
	c1 = int(T[j])
	b = int(bk.B[c1])
	j--
	if int(T[j]) < c1 {
		SA[b] = int32(^j)
	} else {
		SA[b] = int32(j)
	}
	b++
	for i = 0; i < n; i++ {
		if j = int(SA[i]); j > 0 {
			if c0 = int(T[j]); c0 != c1 {
				bk.B[c1] = int32(b)
				c1 = c0
				b = int(bk.B[c1])
			}
			j--
			if int(T[j]) < c1 {
				SA[b] = int32(^j)
			} else {
				SA[b] = int32(j)
			}
			b++
			SA[i] = 0
		} else if j < 0 {
			SA[i] = int32(^j)
		}
	}

	// Right-to-left scan over the S-side cursors.
	bk.prepareInt(T, n, k, true)
	c1 = 0
	b = int(bk.B[c1])
	for i = n - 1; i >= 0; i-- {
		if j = int(SA[i]); j > 0 {
			if c0 = int(T[j]); c0 != c1 {
				bk.B[c1] = int32(b)
				c1 = c0
				b = int(bk.B[c1])
			}
			j--
			b--
			if int(T[j]) > c1 {
				SA[b] = int32(^(j + 1))
			} else {
				SA[b] = int32(j)
			}
			SA[i] = 0
		}
	}
}

// postProcLMS1Int compacts the sorted LMS positions into SA[:m] and names
// each LMS substring by explicit comparison against its predecessor. Names
// land in the upper half of SA; the return value is the number of distinct
// names.
func postProcLMS1Int(T, SA []int32, n, m int) int {
	var i, j, p, q, plen, qlen, name int
	var c0, c1 int
	var diff bool

	// Compact all the sorted substrings into the first m items of SA.
	// 2*m must be not larger than n (provable).
	for i = 0; SA[i] < 0; i++ {
		SA[i] = int32(^int(SA[i]))
	}
	if i < m {
		for j, i = i, i+1; ; i++ {
			if p = int(SA[i]); p < 0 {
				SA[j] = int32(^p)
				j++
				SA[i] = 0
				if j == m {
					break
				}
			}
		}
	}

	// Store the length of all substrings.
	i = n - 1
	j = n - 1
	c0 = int(T[n-1])
	for {
		c1 = c0
		if i--; i < 0 {
			break
		}
		if c0 = int(T[i]); c0 < c1 {
			break
		}
	}
	for i >= 0 {
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = int(T[i]); c0 > c1 {
				break
			}
		}
		if i >= 0 {
			SA[m+((i+1)>>1)] = int32(j - i)
			j = i + 1
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = int(T[i]); c0 < c1 {
					break
				}
			}
		}
	}

	// Find the lexicographic names of all substrings.
	name = 0
	qlen = 0
	for i, q = 0, n; i < m; i++ {
		p = int(SA[i])
		plen = int(SA[m+(p>>1)])
		diff = true
		if plen == qlen && q+plen < n {
			for j = 0; j < plen && T[p+j] == T[q+j]; j++ {
			}
			if j == plen {
				diff = false
			}
		}
		if diff {
			name++
			q = p
			qlen = plen
		}
		SA[m+(p>>1)] = int32(name)
	}
	return name
}

// sortLMS2Int is the online naming variant of sortLMS1Int. The distinct-name
// table in the bucket configuration tracks, per (symbol, class) cell, the
// scan epoch of the last write, so that entries starting a new equivalence
// class of LMS substrings come out carrying a +n group marker.
func sortLMS2Int(T, SA []int32, bk *buckets, n, k int) {
	var b, i, j, t, d int
	var c0, c1 int

	// Left-to-right scan over the L-side cursors.
	bk.prepareInt(T, n, k, false)
	j = n - 1
	c1 = int(T[j])
	b = int(bk.B[c1])
	j--
	if int(T[j]) < c1 {
		t = 1
	} else {
		t = 0
	}
	j += n
	if t&1 > 0 {
		SA[b] = int32(^j)
	} else {
		SA[b] = int32(j)
	}
	b++
	for i, d = 0, 0; i < n; i++ {
		if j = int(SA[i]); j > 0 {
			if n <= j {
				d++
				j -= n
			}
			if c0 = int(T[j]); c0 != c1 {
				bk.B[c1] = int32(b)
				c1 = c0
				b = int(bk.B[c1])
			}
			j--
			t = c0 << 1
			if int(T[j]) < c1 {
				t |= 1
			}
			if int(bk.D[t]) != d {
				j += n
				bk.D[t] = int32(d)
			}
			if t&1 > 0 {
				SA[b] = int32(^j)
			} else {
				SA[b] = int32(j)
			}
			b++
			SA[i] = 0
		} else if j < 0 {
			SA[i] = int32(^j)
		}
	}

	// Slide the group markers down to the entries that will seed the
	// right-to-left scan.
	for i = n - 1; i >= 0; i-- {
		if SA[i] > 0 {
			if int(SA[i]) < n {
				SA[i] += int32(n)
				for j = i - 1; int(SA[j]) < n; j-- {
				}
				SA[j] -= int32(n)
				i = j
			}
		}
	}

	// Right-to-left scan over the S-side cursors. The epoch counter carries
	// over so the surviving markers denote the final equivalence classes.
	bk.prepareInt(T, n, k, true)
	c1 = 0
	b = int(bk.B[c1])
	for i, d = n-1, d+1; i >= 0; i-- {
		if j = int(SA[i]); j > 0 {
			if n <= j {
				d++
				j -= n
			}
			if c0 = int(T[j]); c0 != c1 {
				bk.B[c1] = int32(b)
				c1 = c0
				b = int(bk.B[c1])
			}
			j--
			t = c0 << 1
			if int(T[j]) > c1 {
				t |= 1
			}
			if int(bk.D[t]) != d {
				j += n
				bk.D[t] = int32(d)
			}
			b--
			if t&1 > 0 {
				SA[b] = int32(^(j + 1))
			} else {
				SA[b] = int32(j)
			}
			SA[i] = 0
		}
	}
}

// induceInt completes SA from the LMS suffixes placed at their bucket ends.
func induceInt(T, SA []int32, bk *buckets, n, k int) {
	var b, i, j int
	var c0, c1 int

	// Left-to-right scan induces the L-type suffixes.
	bk.prepareInt(T, n, k, false)
	j = n - 1
	c1 = int(T[j])
	b = int(bk.B[c1])
	if j > 0 && int(T[j-1]) < c1 {
		SA[b] = int32(^j)
	} else {
		SA[b] = int32(j)
	}
	b++
	for i = 0; i < n; i++ {
		j = int(SA[i])
		SA[i] = int32(^j)
		if j > 0 {
			j--
			if c0 = int(T[j]); c0 != c1 {
				bk.B[c1] = int32(b)
				c1 = c0
				b = int(bk.B[c1])
			}
			if j > 0 && int(T[j-1]) < c1 {
				SA[b] = int32(^j)
			} else {
				SA[b] = int32(j)
			}
			b++
		}
	}

	// Right-to-left scan induces the S-type suffixes and clears the markers.
	bk.prepareInt(T, n, k, true)
	c1 = 0
	b = int(bk.B[c1])
	for i = n - 1; i >= 0; i-- {
		if j = int(SA[i]); j > 0 {
			j--
			if c0 = int(T[j]); c0 != c1 {
				bk.B[c1] = int32(b)
				c1 = c0
				b = int(bk.B[c1])
			}
			b--
			if j == 0 || int(T[j-1]) > c1 {
				SA[b] = int32(^j)
			} else {
				SA[b] = int32(j)
			}
		} else {
			SA[i] = int32(^j)
		}
	}
}

// computeInt is the integer-alphabet core. T is the reduced string over the
// alphabet [0, k); SA must be n+fs long. The bucket configuration is chosen
// from the available slack; with fs below 2k the scans fall back to a single
// shared row rebuilt by rescanning T, and the explicit naming variant runs
// whenever no distinct-name table is materialized.
func computeInt(T, SA []int32, fs, n, k int) {
	var bk buckets
	var b, i, j, m, p, q, d, name int
	var c0, c1 int

	layout := layout1K
	switch {
	case fs >= 6*k:
		layout = layout6K
	case fs >= 4*k:
		layout = layout4K
	case fs >= 2*k:
		layout = layout2K
	}
	switch layout {
	case layout6K:
		bk.C = SA[n+fs-k:][:k]
		bk.B = SA[n+fs-2*k:][:k]
		bk.S = SA[n+fs-3*k:][:k]
		bk.E = SA[n+fs-4*k:][:k]
		bk.D = SA[n+fs-6*k:][:2*k]
	case layout4K:
		bk.C = SA[n+fs-k:][:k]
		bk.B = SA[n+fs-2*k:][:k]
		bk.D = SA[n+fs-4*k:][:2*k]
	case layout2K:
		bk.C = SA[n+fs-k:][:k]
		bk.B = SA[n+fs-2*k:][:k]
	default:
		if fs >= k {
			bk.C = SA[n+fs-k:][:k]
		} else {
			bk.C = make([]int32, k) // the only conditional allocation
		}
		bk.B = bk.C
		bk.shared = true
	}
	online := bk.D != nil && n <= maxOnlineLen && n/k >= 2

	// Stage 1: reduce the problem by at least 1/2.
	// Sort all the LMS-substrings.
	getCountsInt(T, bk.C, n)
	if bk.S != nil {
		getBuckets(bk.C, bk.S, k, false)
		getBuckets(bk.C, bk.E, k, true)
		copy(bk.B, bk.E)
	} else {
		getBuckets(bk.C, bk.B, k, true)
	}
	for i = 0; i < n; i++ {
		SA[i] = 0
	}
	b = -1
	i = n - 1
	j = n
	m = 0
	c0 = int(T[n-1])
	for {
		c1 = c0
		if i--; i < 0 {
			break
		}
		if c0 = int(T[i]); c0 < c1 {
			break
		}
	}
	for i >= 0 {
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = int(T[i]); c0 > c1 {
				break
			}
		}
		if i >= 0 {
			if b >= 0 {
				SA[b] = int32(j)
			}
			bk.B[c1]--
			b = int(bk.B[c1])
			j = i
			m++
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = int(T[i]); c0 < c1 {
					break
				}
			}
		}
	}

	if m > 1 {
		if online {
			// Release the slot reserved for the first LMS suffix and mark
			// the lowest placed entry of every bucket as a group start.
			bk.B[T[j+1]]++
			for i, d = 0, 0; i < k; i++ {
				d += int(bk.C[i])
				if int(bk.B[i]) != d {
					SA[bk.B[i]] += int32(n)
				}
				bk.D[i] = 0
				bk.D[i+k] = 0
			}
			sortLMS2Int(T, SA, &bk, n, k)
			name = postProcLMS2(SA, n, m)
		} else {
			sortLMS1Int(T, SA, &bk, n, k)
			name = postProcLMS1Int(T, SA, n, m)
		}
	} else if m == 1 {
		SA[b] = int32(j + 1)
		name = 1
	} else {
		name = 0
	}

	// Stage 2: solve the reduced problem.
	// Recurse if the names are not yet unique.
	if name < m {
		newfs := n + fs - 2*m
		recount := bk.shared
		if !bk.shared {
			// Keep the counts row clear of the recursion arena when the
			// reduced problem still fits; otherwise rebuild it afterwards.
			if k+name <= newfs {
				newfs -= k
			} else {
				recount = true
			}
		}
		RA := SA[m+newfs : m+newfs+m]
		for i, j = m+(n>>1)-1, m-1; m <= i; i-- {
			if SA[i] != 0 {
				RA[j] = SA[i] - 1
				j--
			}
		}
		computeInt(RA, SA[:m+newfs], newfs, m, name)

		// Regather the LMS positions in their order of appearance and
		// translate the solved ranks back to positions.
		i = n - 1
		j = m - 1
		c0 = int(T[n-1])
		for {
			c1 = c0
			if i--; i < 0 {
				break
			}
			if c0 = int(T[i]); c0 < c1 {
				break
			}
		}
		for i >= 0 {
			for {
				c1 = c0
				if i--; i < 0 {
					break
				}
				if c0 = int(T[i]); c0 > c1 {
					break
				}
			}
			if i >= 0 {
				RA[j] = int32(i + 1)
				j--
				for {
					c1 = c0
					if i--; i < 0 {
						break
					}
					if c0 = int(T[i]); c0 < c1 {
						break
					}
				}
			}
		}
		for i = 0; i < m; i++ {
			SA[i] = RA[SA[i]]
		}
		if recount && !bk.shared {
			getCountsInt(T, bk.C, n)
		}
		if bk.S != nil {
			// The pristine pointer rows sat inside the recursion arena;
			// rebuild them before the final induction.
			getBuckets(bk.C, bk.S, k, false)
			getBuckets(bk.C, bk.E, k, true)
		}
	}

	// Stage 3: induce the result for the original problem.
	// Re-place the LMS suffixes at the tails of their buckets, preserving
	// their sorted order, and zero everything in between.
	if m > 1 {
		bk.prepareInt(T, n, k, true)
		i = m - 1
		j = n
		p = int(SA[m-1])
		c1 = int(T[p])
		for {
			c0 = c1
			q = int(bk.B[c0])
			for q < j {
				j--
				SA[j] = 0
			}
			for {
				j--
				SA[j] = int32(p)
				if i--; i < 0 {
					break
				}
				p = int(SA[i])
				if c1 = int(T[p]); c1 != c0 {
					break
				}
			}
			if i < 0 {
				break
			}
		}
		for j > 0 {
			j--
			SA[j] = 0
		}
	}
	induceInt(T, SA, &bk, n, k)
}
