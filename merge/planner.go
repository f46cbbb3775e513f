// Copyright 2019 Michael J. Fromberger. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package merge computes, from a sequence of pre-computed token counts and
// a token budget, the boundaries at which to merge consecutive segments so
// each resulting chunk fits under the budget.
//
// The planner is a pure function: it has no notion of the segments'
// contents, only their token counts, so it has no state to share or
// protect across callers.
package merge

import "sort"

// Plan is the outcome of planning a merge over a token-count sequence: the
// end-exclusive boundary of each chunk and that chunk's total token count,
// in parallel, equal-length slices.
type Plan struct {
	// Ends holds the end-exclusive index, into the original token-count
	// sequence, of each planned chunk.
	Ends []int
	// Tokens holds the token count of each planned chunk.
	Tokens []int
}

// FindMergeIndices plans a merge over tokenCounts under budget chunkSize,
// per spec §4.4: a prefix-sum binary search over the running total, with a
// one-segment-per-chunk fallback when a single segment alone already meets
// or exceeds the budget.
//
// chunkSize must be positive; FindMergeIndices panics otherwise, since a
// zero or negative budget can never make progress (callers at a language
// boundary should reject this before calling in, per spec §6/§7).
func FindMergeIndices(tokenCounts []int, chunkSize int, combineWhitespace bool) Plan {
	if chunkSize <= 0 {
		panic("merge: chunkSize must be positive")
	}
	m := len(tokenCounts)
	c := prefixSums(tokenCounts, combineWhitespace)

	var plan Plan
	for cur := 0; cur < m; {
		target := c[cur] + chunkSize
		// Find the smallest j with C[j] > target; the greatest index whose
		// running total still fits the budget is j-1.
		j := sort.Search(m-cur+1, func(i int) bool { return c[cur+i] > target }) + cur
		end := j - 1
		if end <= cur {
			end = cur + 1
		}
		plan.Ends = append(plan.Ends, end)
		plan.Tokens = append(plan.Tokens, c[end]-c[cur])
		cur = end
	}
	return plan
}

// prefixSums builds C[0..M] with C[0] = 0 and C[i+1] = C[i] + t[i] + w,
// where w is 1 when combineWhitespace is set (a synthetic per-segment token
// accounting for the whitespace that joins it to its neighbor) and 0
// otherwise.
func prefixSums(t []int, combineWhitespace bool) []int {
	w := 0
	if combineWhitespace {
		w = 1
	}
	c := make([]int, len(t)+1)
	for i, v := range t {
		c[i+1] = c[i] + v + w
	}
	return c
}
