// Copyright 2017, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"index/suffixarray"

	"github.com/dsnet/sufsort"
)

func init() {
	RegisterSorter("ds", sufsort.SuffixArray)

	// The standard library does not expose the raw array, but construction
	// time is still a fair comparison.
	RegisterSorter("std", func(t []byte, sa []int32) error {
		_ = suffixarray.New(t)
		return nil
	})
}
