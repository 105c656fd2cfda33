// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"math/rand"
)

// Ascending - the keys 0..n-1 in order
func Ascending(n int) []int {
	if n <= 0 {
		return []int{}
	}
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// Shuffled - a random permutation of 0..n-1
func Shuffled(n int, rng *rand.Rand) []int {
	keys := Ascending(n)
	rng.Shuffle(len(keys), func(i int, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	return keys
}

// Half - the first n/2 keys of a sequence, the deletion set for the
// random and sorted scenarios
func Half(keys []int) []int {
	return keys[:len(keys)/2]
}
